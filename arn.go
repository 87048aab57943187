// Package arn parses and formats Amazon Resource Names with bounded,
// validated fields. An ARN splits into six colon-separated segments:
//
//	arn:aws:<service>:<region>:<account>:<resource-id>
//
// where the resource ID may contain further colons. Each of the four
// variable fields is tri-state: absent, the "*" wildcard, or a value
// checked against a length cap (region against a closed code table).
package arn

import "strings"

const (
	// Prefix is the literal first segment of every rendered ARN.
	Prefix = "arn"

	// Partition is the partition tag emitted as the second segment.
	Partition = "aws"

	// Separator joins ARN segments.
	Separator = ":"

	// minSegments is the segment count below which input is rejected.
	minSegments = 6
)

// ARN is a parsed Amazon Resource Name. The zero value has all four
// fields absent. ARN is comparable: == and map-key hashing are
// structural over the fields.
type ARN struct {
	Service    Component[ServiceName]
	Region     Component[Region]
	Account    Component[AccountID]
	ResourceID Component[ResourceID]
}

// AnyARN has every field set to the "*" wildcard; as a pattern it
// matches all ARNs. It renders as "arn:aws:*:*:*:*".
var AnyARN = ARN{
	Service:    Wildcard[ServiceName](),
	Region:     Wildcard[Region](),
	Account:    Wildcard[AccountID](),
	ResourceID: Wildcard[ResourceID](),
}

// Parse parses the textual form of an ARN. It fails with
// *InvalidFormatError on fewer than six segments, with
// *InvalidRegionError on an unknown region code, and with one of the
// too-long sentinels when a bounded field exceeds its cap. The prefix
// and partition segments are positional only; their content is not
// checked. Everything from the sixth segment on is the resource ID,
// embedded separators included.
func Parse(s string) (ARN, error) {
	parts := strings.Split(s, Separator)
	if len(parts) < minSegments {
		return ARN{}, &InvalidFormatError{Segments: len(parts)}
	}

	service, err := parseComponent(parts[2], ParseServiceName)
	if err != nil {
		return ARN{}, err
	}

	region, err := parseComponent(parts[3], parseRegionSegment)
	if err != nil {
		return ARN{}, err
	}

	account, err := parseComponent(parts[4], ParseAccountID)
	if err != nil {
		return ARN{}, err
	}

	resourceID, err := parseComponent(strings.Join(parts[5:], Separator), ParseResourceID)
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

// parseRegionSegment adapts ParseRegion to the ARN error taxonomy.
func parseRegionSegment(s string) (Region, error) {
	r, err := ParseRegion(s)
	if err != nil {
		return 0, &InvalidRegionError{Region: s}
	}
	return r, nil
}

// String renders the ARN. The prefix and partition are always emitted
// verbatim; absent fields render as nothing between separators and
// wildcards as "*". Rendering cannot fail.
func (a ARN) String() string {
	return strings.Join([]string{
		Prefix,
		Partition,
		a.Service.render(ServiceName.String),
		a.Region.render(Region.String),
		a.Account.render(AccountID.String),
		a.ResourceID.render(ResourceID.String),
	}, Separator)
}

// Matches reports whether a, treated as a pattern, accepts other.
// Wildcard fields accept anything; absent and concrete fields require
// an identical field in other.
func (a ARN) Matches(other ARN) bool {
	return a.Service.matches(other.Service) &&
		a.Region.matches(other.Region) &&
		a.Account.matches(other.Account) &&
		a.ResourceID.matches(other.ResourceID)
}

// MarshalText implements encoding.TextMarshaler. An ARN embeds in
// structured documents as a single string scalar.
func (a ARN) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parse failures
// surface to the enclosing decoder.
func (a *ARN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
