package catalog

// TokenResponse is the interesting part of the login response. The backend
// also returns token_type, expires_in and a user object, none of which the
// backfill needs.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type Category struct {
	Name string `json:"name"`
}

// Product is the list-view shape of a catalog product. Only the fields the
// backfill reads are mapped.
type Product struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Category *Category `json:"category"`
}

type ProductListResponse struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
}

// ProductImage mirrors the backend's image record. The backfill only cares
// about existence, but the full shape is useful when inspecting responses.
type ProductImage struct {
	ID        int    `json:"id"`
	Filename  string `json:"filename"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// ImageUpload is the base64 upload payload for POST /api/images/product/{id}.
type ImageUpload struct {
	ImageData   string `json:"image_data"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	IsPrimary   bool   `json:"is_primary"`
	SortOrder   int    `json:"sort_order"`
}
