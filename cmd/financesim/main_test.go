package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskmanagement123/financesim"
)

const testScenario = `business:
  initial_capital: "50000"
  profit_margin: "0.25"
  expenses: "2000"
  reinvestment_amount: "2000"
  start_date: "2024-01-01"
islamic:
  bank_fee: "0.25"
  bank_share: "0.12"
conventional:
  interest_rate: "0.012"
  loan_period: 1
simulation:
  time_period: 50
  grace_period: 10
logging:
  level: error
`

func TestCompareCommand(t *testing.T) {
	t.Cleanup(financesim.Reset)
	path := filepath.Join(t.TempDir(), "financesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScenario), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"compare", "--config", path, "-o", "json", "--log-pretty=false"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	var got comparisonReportJSON
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "islamic", got.Preferred)
	assert.Equal(t, "SUCCESS", got.Islamic.Status)
	assert.Equal(t, "FAIL", got.Conventional.Status)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := versionCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "financesim dev\n", out.String())
}
