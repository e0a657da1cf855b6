// query.go
package nixsearch

import (
	jsoniter "github.com/json-iterator/go"
)

// searchFields are the boosted fields the search.nixos.org frontend
// matches against
var searchFields = []string{
	"package_attr_name^9",
	"package_attr_name.*^5.3999999999999995",
	"package_programs^9",
	"package_programs.*^5.3999999999999995",
	"package_pname^6",
	"package_pname.*^3.5999999999999996",
	"package_description^1.3",
	"package_description.*^0.78",
	"package_longDescription^1",
	"package_longDescription.*^0.6",
	"flake_name^0.5",
	"flake_name.*^0.3",
}

// buildSearchBody encodes a Query as the Elasticsearch request body the
// search.nixos.org frontend sends: pagination, sort, a type filter, an
// optional platform filter, and a dis_max over a cross-fields
// multi_match plus a wildcard on the attribute name.
func buildSearchBody(q Query) ([]byte, error) {
	filters := []map[string]interface{}{
		{
			"term": map[string]interface{}{
				"type": map[string]interface{}{
					"value": "package",
					"_name": "filter_packages",
				},
			},
		},
	}

	if q.Platform != "" {
		filters = append(filters, map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"bool": map[string]interface{}{
							"should": []map[string]interface{}{
								{
									"term": map[string]interface{}{
										"package_platforms": map[string]interface{}{
											"_name": "filter_bucket_package_platforms",
											"value": q.Platform,
										},
									},
								},
							},
						},
					},
				},
			},
		})
	}

	body := map[string]interface{}{
		"from": q.From(),
		"size": q.Size(),
		"sort": []map[string]interface{}{
			{
				"_score":            "desc",
				"package_attr_name": "desc",
				"package_pversion":  "desc",
			},
		},
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": filters,
				"must": []map[string]interface{}{
					{
						"dis_max": map[string]interface{}{
							"tie_breaker": 0.7,
							"queries": []map[string]interface{}{
								{
									"multi_match": map[string]interface{}{
										"type":                                "cross_fields",
										"query":                               q.Term,
										"analyzer":                            "whitespace",
										"auto_generate_synonyms_phrase_query": false,
										"operator":                            "and",
										"_name":                               "multi_match_" + q.Term,
										"fields":                              searchFields,
									},
								},
								{
									"wildcard": map[string]interface{}{
										"package_attr_name": map[string]interface{}{
											"value":            "*" + q.Term + "*",
											"case_insensitive": true,
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	return jsoniter.Marshal(body)
}
