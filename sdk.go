package arn

import (
	awsarn "github.com/aws/aws-sdk-go-v2/aws/arn"
)

// AWS converts the ARN to the SDK's loose five-string representation.
// Wildcard fields become "*" and absent fields empty strings, matching
// the textual form; the partition is the fixed "aws".
func (a ARN) AWS() awsarn.ARN {
	return awsarn.ARN{
		Partition: Partition,
		Service:   a.Service.render(ServiceName.String),
		Region:    a.Region.render(Region.String),
		AccountID: a.Account.render(AccountID.String),
		Resource:  a.ResourceID.render(ResourceID.String),
	}
}

// FromAWS converts an SDK ARN into a validated value. Field lengths and
// the region table are enforced the same way Parse enforces them; "" and
// "*" map onto the absent and wildcard states. The partition is ignored,
// rendering always emits "aws".
func FromAWS(v awsarn.ARN) (ARN, error) {
	service, err := parseComponent(v.Service, ParseServiceName)
	if err != nil {
		return ARN{}, err
	}

	region, err := parseComponent(v.Region, parseRegionSegment)
	if err != nil {
		return ARN{}, err
	}

	account, err := parseComponent(v.AccountID, ParseAccountID)
	if err != nil {
		return ARN{}, err
	}

	resourceID, err := parseComponent(v.Resource, ParseResourceID)
	if err != nil {
		return ARN{}, err
	}

	return ARN{
		Service:    service,
		Region:     region,
		Account:    account,
		ResourceID: resourceID,
	}, nil
}
