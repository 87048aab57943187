package arn

import "fmt"

// Region is an AWS region code from the closed set this library supports.
// The zero value is USEast1.
type Region uint8

const (
	USEast1 Region = iota
	USEast2
	USWest1
	USWest2
	AFSouth1
	APEast1
	APEast2
	APSouth1
	APSouth2
	APSoutheast1
	APSoutheast2
	APSoutheast3
	APSoutheast4
	APSoutheast5
	APSoutheast7
	APNortheast1
	APNortheast2
	APNortheast3
	CACentral1
	CAWest1
	EUCentral1
	EUCentral2
	EUWest1
	EUWest2
	EUSouth1
	EUSouth2
	EUNorth1
	EUNorth2
	ILCentral1
	MXCentral1
	MESouth1
	MECentral1
	SAEast1
)

// GlobalRegion is the region global services resolve to.
const GlobalRegion = USEast1

// regionCodes maps each variant to its canonical code. regionsByCode is
// the inverse, built in init so the two tables cannot drift apart.
var regionCodes = [...]string{
	USEast1:      "us-east-1",
	USEast2:      "us-east-2",
	USWest1:      "us-west-1",
	USWest2:      "us-west-2",
	AFSouth1:     "af-south-1",
	APEast1:      "ap-east-1",
	APEast2:      "ap-east-2",
	APSouth1:     "ap-south-1",
	APSouth2:     "ap-south-2",
	APSoutheast1: "ap-southeast-1",
	APSoutheast2: "ap-southeast-2",
	APSoutheast3: "ap-southeast-3",
	APSoutheast4: "ap-southeast-4",
	APSoutheast5: "ap-southeast-5",
	APSoutheast7: "ap-southeast-7",
	APNortheast1: "ap-northeast-1",
	APNortheast2: "ap-northeast-2",
	APNortheast3: "ap-northeast-3",
	CACentral1:   "ca-central-1",
	CAWest1:      "ca-west-1",
	EUCentral1:   "eu-central-1",
	EUCentral2:   "eu-central-2",
	EUWest1:      "eu-west-1",
	EUWest2:      "eu-west-2",
	EUSouth1:     "eu-south-1",
	EUSouth2:     "eu-south-2",
	EUNorth1:     "eu-north-1",
	EUNorth2:     "eu-north-2",
	ILCentral1:   "il-central-1",
	MXCentral1:   "mx-central-1",
	MESouth1:     "me-south-1",
	MECentral1:   "me-central-1",
	SAEast1:      "sa-east-1",
}

var regionsByCode = make(map[string]Region, len(regionCodes))

func init() {
	for r, code := range regionCodes {
		regionsByCode[code] = Region(r)
	}
}

// RegionError reports a region code that is not in the region table.
type RegionError struct {
	Code string
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("region does not exist: %s", e.Code)
}

// ParseRegion matches s against the region table. The match is exact and
// case-sensitive; no trimming or normalization is applied.
func ParseRegion(s string) (Region, error) {
	r, ok := regionsByCode[s]
	if !ok {
		return 0, &RegionError{Code: s}
	}
	return r, nil
}

// String returns the canonical code for the region.
func (r Region) String() string {
	if int(r) < len(regionCodes) {
		return regionCodes[r]
	}
	return fmt.Sprintf("Region(%d)", uint8(r))
}

// Regions returns every supported region in declaration order.
func Regions() []Region {
	all := make([]Region, len(regionCodes))
	for i := range all {
		all[i] = Region(i)
	}
	return all
}
