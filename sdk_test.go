package arn

import (
	"testing"

	awsarn "github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAWS_RoundTrip(t *testing.T) {
	a, err := Parse("arn:aws:lambda:eu-central-1:123456789012:function:my-function")
	require.NoError(t, err)

	sdk := a.AWS()
	assert.Equal(t, awsarn.ARN{
		Partition: "aws",
		Service:   "lambda",
		Region:    "eu-central-1",
		AccountID: "123456789012",
		Resource:  "function:my-function",
	}, sdk)

	back, err := FromAWS(sdk)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func TestAWS_WildcardsAndAbsent(t *testing.T) {
	sdk := AnyARN.AWS()
	assert.Equal(t, "*", sdk.Service)
	assert.Equal(t, "*", sdk.Region)
	assert.Equal(t, "*", sdk.AccountID)
	assert.Equal(t, "*", sdk.Resource)

	role, err := Parse("arn:aws:iam::123456789012:role/my-role")
	require.NoError(t, err)
	assert.Equal(t, "", role.AWS().Region)
}

func TestFromAWS_Validates(t *testing.T) {
	_, err := FromAWS(awsarn.ARN{Service: "s3", Region: "moon-base-1"})
	var regionErr *InvalidRegionError
	require.ErrorAs(t, err, &regionErr)
	assert.Equal(t, "moon-base-1", regionErr.Region)

	_, err = FromAWS(awsarn.ARN{Service: "this-service-name-is-far-too-long-to-fit"})
	assert.ErrorIs(t, err, ErrServiceTooLong)
}

func TestFromAWS_IgnoresPartition(t *testing.T) {
	// The partition is positional only; render re-emits "aws".
	got, err := FromAWS(awsarn.ARN{
		Partition: "aws-cn",
		Service:   "s3",
		Region:    "us-east-1",
		AccountID: "123456789012",
		Resource:  "bucket",
	})
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:s3:us-east-1:123456789012:bucket", got.String())
}
