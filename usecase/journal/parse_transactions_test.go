package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/salonledger/journal-builder/entity"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoadTransactionList(t *testing.T) {
	content := "Vagaro Report\n" +
		"Generated 07/18/2025\n" +
		"\n" +
		"Checkout Date,Customer,Transaction ID,Transaction Type,GiftCertificate No,Price,Tip,Amt paid,Disc,Qty\n" +
		"7/18/2025 9:00 AM,Jane Roe,TX-1,Service,,$50.00,$5.00,$45.00,,\n" +
		"7/18/2025 9:30 AM,John Doe,TX-2,Service Add-On,,$20.00,,$20.00,,\n" +
		"7/18/2025 10:00 AM,Pat Lee,TX-3,Membership,,$30.00,,$60.00,,2\n" +
		"7/18/2025 10:30 AM,Ann Wu,TX-4,Gift Cards,GC-77,$25.00,,$25.00,,\n" +
		",,TX-5,Service,,0,0,0,0,\n" +
		",,,Totals,,0,0,0,0,\n"

	path := writeTempCSV(t, "transactions.csv", content)

	txs, err := LoadTransactionList(path)
	if err != nil {
		t.Fatalf("LoadTransactionList: %v", err)
	}

	if len(txs) != 4 {
		t.Fatalf("parsed %d transactions, want 4 (zero rows and summary dropped)", len(txs))
	}

	if txs[0].TransactionID != "TX-1" || txs[0].Type != entity.TypeService {
		t.Errorf("row 0 = %+v, want Service TX-1", txs[0])
	}
	if !txs[0].Price.Equal(mustDecimal(t, "50")) || !txs[0].Tip.Equal(mustDecimal(t, "5")) {
		t.Errorf("row 0 amounts = price %s tip %s, want 50/5", txs[0].Price, txs[0].Tip)
	}
	if txs[1].Type != entity.TypeServiceAddOn {
		t.Errorf("row 1 type = %q, want ServiceAddOn", txs[1].Type)
	}
	if txs[2].Type != entity.TypeMembership || txs[2].Quantity != 2 {
		t.Errorf("row 2 = %+v, want Membership qty 2", txs[2])
	}
	if txs[3].Type != entity.TypeGiftCard || txs[3].GiftCertificateNumber != "GC-77" {
		t.Errorf("row 3 = %+v, want GiftCard GC-77", txs[3])
	}
}

func TestLoadTransactionListMissingHeader(t *testing.T) {
	path := writeTempCSV(t, "bad.csv", "a,b,c\n1,2,3\n")
	if _, err := LoadTransactionList(path); err == nil {
		t.Fatal("expected error for file without the transaction header row")
	}
}

func TestLoadDepositReport(t *testing.T) {
	content := "TranNum,Name,TranType,Fee,NetAmount\n" +
		"TX-1,Jane Roe,Sale,$2.00,$48.00\n" +
		"TX-2,John Doe,Sale,$3.00,$57.00\n" +
		",,Batch Adjustment,$0.00,($0.50)\n" +
		",,,,\n"

	path := writeTempCSV(t, "deposits.csv", content)

	settlements, err := LoadDepositReport(path)
	if err != nil {
		t.Fatalf("LoadDepositReport: %v", err)
	}

	if len(settlements) != 3 {
		t.Fatalf("parsed %d settlement rows, want 3", len(settlements))
	}
	if settlements[0].TransactionNumber != "TX-1" || !settlements[0].Fee.Equal(mustDecimal(t, "2")) {
		t.Errorf("row 0 = %+v, want TX-1 fee 2", settlements[0])
	}
	adj := settlements[2]
	if adj.TransactionNumber != "" || !adj.NetAmount.Equal(mustDecimal(t, "-0.50")) {
		t.Errorf("adjustment row = %+v, want anonymous net -0.50", adj)
	}
}
