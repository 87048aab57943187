package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/conner-holden/arn"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCmd returns a bare command with captured output for driving the
// RunE functions directly.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func TestFieldText(t *testing.T) {
	assert.Equal(t, "", fieldText(arn.Component[arn.ServiceName]{}))
	assert.Equal(t, "*", fieldText(arn.Wildcard[arn.ServiceName]()))
	assert.Equal(t, "s3", fieldText(arn.ValueOf(arn.ServiceName("s3"))))
	assert.Equal(t, "eu-west-1", fieldText(arn.ValueOf(arn.EUWest1)))
}

func TestFieldJSON(t *testing.T) {
	assert.Nil(t, fieldJSON(arn.Component[arn.Region]{}))

	got := fieldJSON(arn.Wildcard[arn.Region]())
	require.NotNil(t, got)
	assert.Equal(t, "*", *got)
}

func TestRunParse_Text(t *testing.T) {
	cmd, buf := newTestCmd()
	parseJSON = false

	err := runParse(cmd, []string{"arn:aws:iam::123456789012:role/my-role"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "service:     iam")
	assert.Contains(t, out, "region:      \n")
	assert.Contains(t, out, "account:     123456789012")
	assert.Contains(t, out, "resource id: role/my-role")
}

func TestRunParse_JSON(t *testing.T) {
	cmd, buf := newTestCmd()
	parseJSON = true
	defer func() { parseJSON = false }()

	err := runParse(cmd, []string{"arn:aws:s3:us-east-1:123456789012:bucket"})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"input": "arn:aws:s3:us-east-1:123456789012:bucket",
		"service": "s3",
		"region": "us-east-1",
		"account": "123456789012",
		"resourceId": "bucket"
	}`, buf.String())
}

func TestRunParse_Invalid(t *testing.T) {
	cmd, _ := newTestCmd()
	err := runParse(cmd, []string{"arn:aws:s3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ARN format")
}

func TestRunValidate_Args(t *testing.T) {
	cmd, buf := newTestCmd()

	err := runValidate(cmd, []string{
		"arn:aws:s3:us-east-1:123456789012:bucket",
		"not-an-arn",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 inputs invalid")
	assert.Contains(t, buf.String(), "arn:aws:s3:us-east-1:123456789012:bucket: OK")
	assert.Contains(t, buf.String(), "not-an-arn: FAILED")
}

func TestRunValidate_Stdin(t *testing.T) {
	cmd, buf := newTestCmd()
	cmd.SetIn(strings.NewReader("arn:aws:iam::123456789012:role/my-role\n\n"))

	err := runValidate(cmd, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "role/my-role: OK")
}

func TestRunMatch(t *testing.T) {
	cmd, buf := newTestCmd()

	err := runMatch(cmd, []string{
		"arn:aws:s3:*:*:*",
		"arn:aws:s3:us-east-1:123456789012:bucket",
		"arn:aws:lambda:us-east-1:123456789012:function:fn",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "arn:aws:s3:us-east-1:123456789012:bucket")
	assert.NotContains(t, out, "lambda")
}

func TestRunMatch_NoMatches(t *testing.T) {
	cmd, _ := newTestCmd()

	err := runMatch(cmd, []string{
		"arn:aws:dynamodb:*:*:*",
		"arn:aws:s3:us-east-1:123456789012:bucket",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no inputs matched")
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("a\n\n  b  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestRegionsCmd(t *testing.T) {
	cmd, buf := newTestCmd()
	regionsCmd.Run(cmd, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(arn.Regions()))
	assert.Equal(t, "us-east-1", lines[0])
	assert.Contains(t, lines, "sa-east-1")
}
