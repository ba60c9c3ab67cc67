package scraper

import (
	"encoding/json"

	"github.com/adomaitisc/gupy-automation/internal/apperr"
)

// Listing is one raw job posting as returned by the portal API.
type Listing struct {
	ID             int64
	Name           string
	CareerPageName string
	IsRemoteWork   bool
	JobURL         string
}

type rawListing struct {
	ID             *int64  `json:"id"`
	Name           *string `json:"name"`
	CareerPageName *string `json:"careerPageName"`
	IsRemoteWork   *bool   `json:"isRemoteWork"`
	JobURL         *string `json:"jobUrl"`
}

type searchResponse struct {
	Data *[]json.RawMessage `json:"data"`
}

// DecodeListing decodes one listing object, failing on missing or mistyped
// fields.
func DecodeListing(data []byte) (Listing, error) {
	var raw rawListing
	if err := json.Unmarshal(data, &raw); err != nil {
		return Listing{}, apperr.Wrapf(err, apperr.KindDataFormat, "decode listing")
	}

	switch {
	case raw.ID == nil:
		return Listing{}, apperr.MissingField("listing", "id")
	case raw.Name == nil:
		return Listing{}, apperr.MissingField("listing", "name")
	case raw.CareerPageName == nil:
		return Listing{}, apperr.MissingField("listing", "careerPageName")
	case raw.IsRemoteWork == nil:
		return Listing{}, apperr.MissingField("listing", "isRemoteWork")
	case raw.JobURL == nil:
		return Listing{}, apperr.MissingField("listing", "jobUrl")
	}

	return Listing{
		ID:             *raw.ID,
		Name:           *raw.Name,
		CareerPageName: *raw.CareerPageName,
		IsRemoteWork:   *raw.IsRemoteWork,
		JobURL:         *raw.JobURL,
	}, nil
}

// decodeSearchResponse decodes the listings of one search page. With
// remoteOnly set, only the isRemoteWork flag of each listing is read first and
// the remaining fields are required on remote listings alone.
func decodeSearchResponse(body []byte, remoteOnly bool) ([]Listing, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperr.Wrapf(err, apperr.KindDataFormat, "decode search response")
	}
	if resp.Data == nil {
		return nil, apperr.MissingField("search response", "data")
	}

	listings := make([]Listing, 0, len(*resp.Data))
	for idx, item := range *resp.Data {
		if remoteOnly {
			remote, err := decodeRemoteFlag(item)
			if err != nil {
				return nil, apperr.Wrapf(err, apperr.KindDataFormat, "data[%d]", idx)
			}
			if !remote {
				continue
			}
		}
		listing, err := DecodeListing(item)
		if err != nil {
			return nil, apperr.Wrapf(err, apperr.KindDataFormat, "data[%d]", idx)
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func decodeRemoteFlag(data []byte) (bool, error) {
	var raw struct {
		IsRemoteWork *bool `json:"isRemoteWork"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return false, apperr.Wrapf(err, apperr.KindDataFormat, "decode listing")
	}
	if raw.IsRemoteWork == nil {
		return false, apperr.MissingField("listing", "isRemoteWork")
	}
	return *raw.IsRemoteWork, nil
}
