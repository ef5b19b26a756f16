package europepmc

import "strconv"

// SearchResponse is the top-level shape of a Europe PMC search response.
type SearchResponse struct {
	HitCount   int `json:"hitCount"`
	ResultList struct {
		Result []Article `json:"result"`
	} `json:"resultList"`
}

// Article is one result with resultType=core.
type Article struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	PMID         string `json:"pmid"`
	DOI          string `json:"doi"`
	Title        string `json:"title"`
	AuthorString string `json:"authorString"`
	JournalTitle string `json:"journalTitle"`
	JournalInfo  struct {
		Journal struct {
			Title string `json:"title"`
		} `json:"journal"`
	} `json:"journalInfo"`
	PubYear      string `json:"pubYear"`
	AbstractText string `json:"abstractText"`
	KeywordList  struct {
		Keyword []string `json:"keyword"`
	} `json:"keywordList"`
	FullTextURLList struct {
		FullTextURL []FullTextURL `json:"fullTextUrl"`
	} `json:"fullTextUrlList"`
	PubTypeList struct {
		PubType []string `json:"pubType"`
	} `json:"pubTypeList"`
}

// FullTextURL is a single full text link.
type FullTextURL struct {
	Availability     string `json:"availability"`
	AvailabilityCode string `json:"availabilityCode"`
	DocumentStyle    string `json:"documentStyle"`
	Site             string `json:"site"`
	URL              string `json:"url"`
}

func (a *Article) journal() string {
	if a.JournalInfo.Journal.Title != "" {
		return a.JournalInfo.Journal.Title
	}
	return a.JournalTitle
}

func (a *Article) year() int {
	y, err := strconv.Atoi(a.PubYear)
	if err != nil {
		return 0
	}
	return y
}
