package scraper

import "fmt"

// FetchError reports that a page could not be downloaded: either the request
// failed outright (Err) or the server answered with a non-2xx Status.
type FetchError struct {
	Page   string
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s page %s: %v", e.Page, e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s page %s: status %d", e.Page, e.URL, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
