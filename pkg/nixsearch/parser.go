// parser.go
package nixsearch

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source packageSource `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

type packageSource struct {
	AttrName    string   `json:"package_attr_name"`
	Version     string   `json:"package_pversion"`
	Description string   `json:"package_description"`
	Platforms   []string `json:"package_platforms"`
}

// parseResult decodes an Elasticsearch search response body into a
// Result. Missing optional fields come back as empty strings.
func parseResult(data []byte) (*Result, error) {
	var resp searchResponse
	if err := jsoniter.Unmarshal(data, &resp); err != nil {
		return nil, errors.WithMessage(err, "unmarshal search response")
	}

	result := &Result{Total: resp.Hits.Total.Value}
	for _, hit := range resp.Hits.Hits {
		result.Packages = append(result.Packages, Package{
			AttrName:    hit.Source.AttrName,
			Version:     hit.Source.Version,
			Description: hit.Source.Description,
			Platforms:   hit.Source.Platforms,
		})
	}

	return result, nil
}
