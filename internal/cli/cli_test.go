package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CLISuite struct {
	suite.Suite
	db  *database.DB
	cfg *config.Config
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.T().Setenv("HOME", s.T().TempDir())

	s.db = database.SetupTestDB(s.T())

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.cfg = &config.Config{
		JWT: config.JWTConfig{
			AccessTokenDuration: time.Hour,
			PrivateKey:          privateKey,
			PublicKey:           publicKey,
			Issuer:              "ledgerctl-test",
		},
		AI: config.AIConfig{Provider: config.AIProviderNone},
		Ledger: config.LedgerConfig{
			HighExpenseThreshold: decimal.NewFromInt(500),
			DefaultCurrency:      "KZT",
		},
	}
}

func (s *CLISuite) run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCommand(Options{
		Out:        &out,
		Err:        io.Discard,
		LoadConfig: func() *config.Config { return s.cfg },
		OpenDB:     func(*config.Config) (*gorm.DB, error) { return s.db.DB, nil },
	})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) writeFile(name, content string) string {
	path := filepath.Join(s.T().TempDir(), name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *CLISuite) TestSampleCSV() {
	out, err := s.run("sample-csv")
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Equal(strings.Join(services.ImportColumns, ","), lines[0])
	s.Len(lines, 6)
}

func (s *CLISuite) TestSeedRulesThenCategorize() {
	out, err := s.run("seed-rules", "-o", "json")
	s.Require().NoError(err)

	var seeded map[string]int
	s.Require().NoError(json.Unmarshal([]byte(out), &seeded))
	s.Positive(seeded["added"])

	out, err = s.run("seed-rules")
	s.Require().NoError(err)
	s.Equal("Seeded 0 rules\n", out)

	out, err = s.run("categorize", "-o", "json", "WOLT", "delivery", "Almaty")
	s.Require().NoError(err)

	var result models.CategorizationResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result))
	s.Equal(models.CategoryFood, result.Category)
	s.Equal(models.CategorizationMethodRule, result.Method)
	s.Equal("wolt", result.MatchedKeyword)
}

func (s *CLISuite) TestCategorize_NoRuleFallsBackToDefault() {
	out, err := s.run("categorize", gofakeit.LetterN(24))
	s.Require().NoError(err)
	s.Contains(out, models.CategoryUncategorized)
	s.Contains(out, models.CategorizationMethodDefault)
}

func (s *CLISuite) TestImportThenBalance() {
	sample, err := s.run("sample-csv")
	s.Require().NoError(err)
	path := s.writeFile("statement.csv", sample)

	out, err := s.run("import", path, "--owner", "Owner@Example.com")
	s.Require().NoError(err)
	s.Contains(out, "Imported 5, skipped 0, duplicates 0")

	out, err = s.run("import", path, "--owner", "owner@example.com", "--dedupe", "-o", "json")
	s.Require().NoError(err)
	var result dto.ImportResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result))
	s.Equal(0, result.Imported)
	s.Equal(5, result.Duplicates)

	out, err = s.run("balance", "--owner", "owner@example.com")
	s.Require().NoError(err)
	s.Equal("554000.00 KZT\n", out)
}

func (s *CLISuite) TestImport_MissingFile() {
	_, err := s.run("import", filepath.Join(s.T().TempDir(), "missing.csv"), "--owner", "owner@example.com")
	s.Require().Error(err)
	s.Contains(err.Error(), "open")
}

func (s *CLISuite) TestOwnerRequired() {
	for _, args := range [][]string{{"balance"}, {"sync"}, {"token"}, {"import", "x.csv"}} {
		_, err := s.run(args...)
		s.Require().Error(err, args[0])
		s.Contains(err.Error(), "owner email is required")
	}
}

func (s *CLISuite) TestOwnerFromProfile() {
	profile := s.writeFile("config.toml", "owner = \"profile@example.com\"\noutput = \"json\"\n")

	out, err := s.run("balance", "--config", profile)
	s.Require().NoError(err)

	var balance dto.BalanceResponse
	s.Require().NoError(json.Unmarshal([]byte(out), &balance))
	s.Equal("0.00", balance.Balance)
	s.Equal("KZT", balance.Currency)

	var count int64
	s.Require().NoError(s.db.Model(&models.User{}).Where("email = ?", "profile@example.com").Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *CLISuite) TestSync_NoConnections() {
	out, err := s.run("sync", "--owner", "owner@example.com")
	s.Require().NoError(err)
	s.Equal("No linked connections\n", out)
}

func (s *CLISuite) TestToken() {
	out, err := s.run("token", "--owner", "owner@example.com", "-o", "json")
	s.Require().NoError(err)

	var token dto.TokenResponse
	s.Require().NoError(json.Unmarshal([]byte(out), &token))
	s.Equal("Bearer", token.TokenType)
	s.True(token.ExpiresAt.After(time.Now()))

	claims, err := services.NewTokenService(&s.cfg.JWT).ValidateAccessToken(token.AccessToken)
	s.Require().NoError(err)
	s.Equal("owner@example.com", claims.Email)
}

func (s *CLISuite) TestUnsupportedOutput() {
	_, err := s.run("sample-csv", "-o", "yaml")
	s.Require().Error(err)
	s.Contains(err.Error(), "unsupported output format")
}

func (s *CLISuite) TestLoadProfile() {
	p, err := LoadProfile("")
	s.Require().NoError(err)
	s.Equal(OutputText, p.Output)
	s.Empty(p.Owner)

	s.T().Setenv("LEDGERCTL_OWNER", "env@example.com")
	s.T().Setenv("LEDGERCTL_OUTPUT", "JSON")
	p, err = LoadProfile("")
	s.Require().NoError(err)
	s.Equal("env@example.com", p.Owner)
	s.Equal(OutputJSON, p.Output)

	_, err = LoadProfile(filepath.Join(s.T().TempDir(), "absent.toml"))
	s.Error(err)

	s.T().Setenv("LEDGERCTL_OUTPUT", "xml")
	_, err = LoadProfile("")
	s.Error(err)
}
