// Package ofx reads OFX/QFX statement files into the balance and transactions
// used to personalize answers.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// SourceName identifies statements produced by this package.
const SourceName = "ofx"

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY must be upper case.
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Some SGML exports drop the closing bracket of a bare opening tag.
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

func (p *Parser) parse(reader io.Reader) (*ofxgo.Response, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}
	return resp, nil
}

// ParseStatement parses an OFX/QFX file into a statement.
//
// The balance is the sum of the ledger balances of the bank accounts in the
// file. Credit card balances are owed money and never count toward it, so a
// file with only card statements yields an absent balance.
func (p *Parser) ParseStatement(ctx context.Context, reader io.Reader) (*model.Statement, error) {
	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stmt := &model.Statement{Source: SourceName}
	var balance float64
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		bank, ok := msg.(*ofxgo.StatementResponse)
		if !ok {
			continue
		}
		bankStmts++

		v, _ := bank.BalAmt.Float64()
		balance += v
		if bank.DtAsOf.After(stmt.AsOf) {
			stmt.AsOf = bank.DtAsOf.Time
		}
		if bank.BankTranList != nil {
			stmt.Transactions = append(stmt.Transactions,
				p.convertTransactions(bank.BankTranList.Transactions, string(bank.BankAcctFrom.AcctID))...)
		}
	}

	for _, msg := range resp.CreditCard {
		card, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok {
			continue
		}
		ccStmts++

		if card.BankTranList != nil {
			stmt.Transactions = append(stmt.Transactions,
				p.convertTransactions(card.BankTranList.Transactions, string(card.CCAcctFrom.AcctID))...)
		}
	}

	if bankStmts > 0 {
		stmt.Balance = model.Balance(balance)
	}

	slog.Debug("Parsed OFX file",
		"total_transactions", len(stmt.Transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return stmt, nil
}

func (p *Parser) convertTransactions(txns []ofxgo.Transaction, accountID string) []model.Transaction {
	converted := make([]model.Transaction, 0, len(txns))
	for _, ofxTx := range txns {
		converted = append(converted, p.convertTransaction(ofxTx, accountID))
	}
	return converted
}

// convertTransaction converts an OFX transaction to our model.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, accountID string) model.Transaction {
	// OFX signs amounts from the account holder's view: negative is money out.
	amount, _ := ofxTx.TrnAmt.Float64()
	txType := model.TransactionIncome
	if amount < 0 {
		txType = model.TransactionExpense
		amount = -amount
	}

	tx := model.Transaction{
		ID:           string(ofxTx.FiTID),
		Date:         ofxTx.DtPosted.Time,
		Name:         string(ofxTx.Name),
		MerchantName: p.extractMerchantName(ofxTx),
		Amount:       amount,
		AccountID:    accountID,
		Type:         txType,
		Category:     categoryHints(ofxTx.TrnType),
	}
	tx.Hash = tx.GenerateHash()

	return tx
}

// categoryHints infers what it can from the OFX transaction type; OFX carries no categories.
func categoryHints(t ofxgo.TrnType) []string {
	switch t {
	case ofxgo.TrnTypeInt, ofxgo.TrnTypeDiv:
		return []string{"Income", "Interest"}
	case ofxgo.TrnTypeDirectDep:
		return []string{"Income", "Salary"}
	case ofxgo.TrnTypeFee, ofxgo.TrnTypeSrvChg:
		return []string{"Bank Fees"}
	case ofxgo.TrnTypeATM, ofxgo.TrnTypeCash:
		return []string{"Cash & ATM"}
	case ofxgo.TrnTypeXfer:
		return []string{"Transfer"}
	default:
		return nil
	}
}

// extractMerchantName tries to get a clean merchant name from OFX data.
func (p *Parser) extractMerchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}
	name = strings.TrimSpace(name)

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"UPI/",
		"NEFT/",
		"IMPS/",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Leading "MM/DD " date stamps.
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}

// FileSource reads a statement from an OFX file on every fetch, so edits to
// the file show up in the next answer.
type FileSource struct {
	parser *Parser
	path   string
}

// NewFileSource creates a statement source backed by the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{parser: NewParser(), path: path}
}

// FetchStatement implements service.StatementSource.
func (s *FileSource) FetchStatement(ctx context.Context) (*model.Statement, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OFX file %s: %w", s.path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close OFX file", "path", s.path, "error", closeErr)
		}
	}()

	stmt, err := s.parser.ParseStatement(ctx, f)
	if err != nil {
		return nil, err
	}
	if stmt.AsOf.IsZero() {
		if info, statErr := f.Stat(); statErr == nil {
			stmt.AsOf = info.ModTime()
		} else {
			stmt.AsOf = time.Now()
		}
	}
	return stmt, nil
}
