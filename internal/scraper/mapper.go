package scraper

import (
	"strconv"
	"strings"

	"github.com/adomaitisc/gupy-automation/internal/apperr"
	"github.com/adomaitisc/gupy-automation/internal/models"
)

const (
	URLToken = "URL"
	IDToken  = "ID"

	jobPathDelimiter = "/job"
)

// Mapper turns listings into job records. With Enrich set it keeps the
// listing id and derives the application URL from ApplyTemplate.
type Mapper struct {
	ApplyTemplate string
	Enrich        bool
}

func (m Mapper) Map(listing Listing) (models.Job, error) {
	job := models.Job{
		Title:   listing.Name,
		Company: listing.CareerPageName,
		Remote:  listing.IsRemoteWork,
		URL:     listing.JobURL,
	}
	if !m.Enrich {
		return job, nil
	}

	applicationURL, err := ApplicationURL(m.ApplyTemplate, listing.JobURL, listing.ID)
	if err != nil {
		return models.Job{}, err
	}
	id := listing.ID
	job.ID = &id
	job.ApplicationURL = applicationURL
	return job, nil
}

// ApplicationURL substitutes the portal base of jobURL (everything before the
// first "/job") and id into template.
func ApplicationURL(template, jobURL string, id int64) (string, error) {
	base, _, found := strings.Cut(jobURL, jobPathDelimiter)
	if !found {
		return "", apperr.DataFormatf("job url %q has no %q segment", jobURL, jobPathDelimiter)
	}
	r := strings.NewReplacer(URLToken, base, IDToken, strconv.FormatInt(id, 10))
	return r.Replace(template), nil
}
