package chi

import searchuc "github.com/lavkatech/suggest/internal/usecase/search"

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type numericFilterDTO struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Suffix   string  `json:"suffix"`
}

type resultItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Price       float64 `json:"price,omitempty"`
	WeightValue float64 `json:"weight_value,omitempty"`
	WeightUnit  string  `json:"weight_unit,omitempty"`
	PackageSize int     `json:"package_size,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Score       float64 `json:"score"`
}

type searchResponse struct {
	Query            string            `json:"query"`
	LayoutFixedQuery string            `json:"layout_fixed_query,omitempty"`
	NormalizedQuery  string            `json:"normalized_query"`
	NumericFilter    *numericFilterDTO `json:"numeric_filter"`
	Results          []resultItemDTO   `json:"results"`
}

func searchResponseFromDomain(resp *searchuc.Response) searchResponse {
	out := searchResponse{
		Query:           resp.Query,
		NormalizedQuery: resp.NormalizedQuery,
		Results:         make([]resultItemDTO, 0, len(resp.Results)),
	}
	if resp.LayoutFixedQuery != resp.Query {
		out.LayoutFixedQuery = resp.LayoutFixedQuery
	}
	if f := resp.Filter; f != nil {
		out.NumericFilter = &numericFilterDTO{
			Quantity: f.Quantity(),
			Unit:     string(f.Unit().Dimension()),
			Suffix:   string(f.Unit()),
		}
	}
	for i := range resp.Results {
		c := &resp.Results[i]
		p := c.Product()
		out.Results = append(out.Results, resultItemDTO{
			ID:          p.ID(),
			Name:        p.Name(),
			Category:    p.Category(),
			Brand:       p.Brand(),
			Price:       p.Price(),
			WeightValue: p.WeightValue(),
			WeightUnit:  p.WeightUnit(),
			PackageSize: p.PackageSize(),
			ImageURL:    p.ImageURL(),
			Score:       c.Score(),
		})
	}
	return out
}
