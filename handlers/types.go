// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model SignupRequest
type SignupRequest struct {
	// User's first name
	// required: true
	FirstName string `json:"first_name" example:"Jane"`
	// User's last name
	// required: true
	LastName string `json:"last_name" example:"Doe"`
	// User's email address
	// required: true
	Email string `json:"email" example:"user@example.com"`
	// User's password
	// required: true
	Password string `json:"password" example:"MySecretPassword@123"`
	// Optional avatar image URL
	UserImage *string `json:"user_image" example:"https://cdn.linklet.com/u/jane.png"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// User's email address
	Email string `json:"email" example:"user@example.com"`
	// User's password
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model AuthResponse
type AuthResponse struct {
	// Authentication session token.
	// Should be used in the Authorization header as a Bearer token.
	SessionToken string `json:"session_token" example:"sample_session_token"`
	// Message indicating successful operation
	Message string `json:"message" example:"Login successful"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message"`
}

// swagger:model GetUserResponse
type GetUserResponse struct {
	// User's first name
	FirstName string `json:"first_name" example:"Jane"`
	// User's last name
	LastName string `json:"last_name" example:"Doe"`
	// Email address associated with the user's account
	Email string `json:"email" example:"user@example.com"`
	// Avatar image URL
	UserImage *string `json:"user_image"`
	// Name of the user's current plan
	Plan string `json:"plan" example:"free"`
	// Lifetime number of collections created
	URLsCreated uint `json:"urls_created" example:"4"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"User retrieved successfully"`
}

// swagger:model UserCountResponse
type UserCountResponse struct {
	// Number of active users, or null when the count is 50 or fewer
	Count *int64 `json:"count"`
}

// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	CurrentPassword string `json:"current_password"`
	// New password
	NewPassword string `json:"new_password"`
}

// swagger:model DeleteAccountRequest
type DeleteAccountRequest struct {
	// Password confirmation
	Password string `json:"password"`
}

// swagger:model CreateCollectionRequest
type CreateCollectionRequest struct {
	// Title of the collection
	Title string `json:"title" example:"My favorite dev tools"`
	// Description of the collection
	Description *string `json:"description" example:"Tools I reach for every day."`
	// Cover image URL
	Image *string `json:"image"`
	// Whether the collection is reachable by its public link
	Public bool `json:"public" example:"true"`
	// Whether the collection is listed on the explore page
	ExploreByAll bool `json:"explore_by_all" example:"true"`
	// Template ID the page renders with
	Template string `json:"template" example:"classic"`
	// Optional display alias shown instead of the owner's name
	AliasName *string `json:"alias_name"`
	// Optional display alias image
	AliasImage *string `json:"alias_image"`
}

// swagger:model UpdateCollectionRequest
type UpdateCollectionRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	Public       *bool   `json:"public"`
	ExploreByAll *bool   `json:"explore_by_all"`
	Template     *string `json:"template"`
	AliasName    *string `json:"alias_name"`
	AliasImage   *string `json:"alias_image"`
}

// swagger:model CollectionDetails
type CollectionDetails struct {
	// Public ID of the collection
	CollectionID string  `json:"collection_id" example:"col_9f2c4b1a77aa0d3e"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	Views        uint    `json:"views"`
	Public       bool    `json:"public"`
	ExploreByAll bool    `json:"explore_by_all"`
	Template     string  `json:"template"`
	// Number of links stored in the collection
	LinkCount int64 `json:"link_count"`
	// Display name of the creator (alias wins over the real name)
	Creator string `json:"creator,omitempty"`
	// Avatar of the creator
	CreatorImage *string `json:"creator_image,omitempty"`
	CreatedAt    string  `json:"created_at" example:"2023-10-01T12:00:00Z"`
	UpdatedAt    string  `json:"updated_at" example:"2023-10-01T12:00:00Z"`
}

// swagger:model CollectionResponse
type CollectionResponse struct {
	Collection CollectionDetails `json:"collection"`
	Message    string            `json:"message"`
}

// swagger:model CollectionListResponse
type CollectionListResponse struct {
	Data    []CollectionDetails `json:"data"`
	Message string              `json:"message"`
}

// swagger:model PaginationDetails
type PaginationDetails struct {
	// Current page number
	Page int `json:"page"`
	// Page size
	PageSize int `json:"page_size"`
	// Total number of items
	Total int64 `json:"total"`
	// Total number of pages
	TotalPages int `json:"total_pages"`
	// Whether a next page exists
	HasNextPage bool `json:"has_next_page"`
	// Whether a previous page exists
	HasPrevPage bool `json:"has_prev_page"`
}

// swagger:model ExploreResponse
type ExploreResponse struct {
	Data       []CollectionDetails `json:"data"`
	Pagination PaginationDetails   `json:"pagination"`
	Message    string              `json:"message"`
}

// swagger:model PublicCollectionResponse
type PublicCollectionResponse struct {
	Collection CollectionDetails `json:"collection"`
	Links      []LinkDetails     `json:"links"`
	// Template colors of the page
	Template *TemplateDetails `json:"template,omitempty"`
}

// swagger:model CreateLinkRequest
type CreateLinkRequest struct {
	// Title of the link
	Title string `json:"title" example:"Go documentation"`
	// Target URL
	URL string `json:"url" example:"https://go.dev/doc/"`
	// Optional icon or preview image
	Image *string `json:"image"`
	// Position within the collection
	Position *uint `json:"position"`
}

// swagger:model UpdateLinkRequest
type UpdateLinkRequest struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	Image    *string `json:"image"`
	Position *uint   `json:"position"`
}

// swagger:model LinkDetails
type LinkDetails struct {
	LinkID    string  `json:"link_id" example:"lnk_0af3c9d2b581e6f4"`
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Image     *string `json:"image"`
	Position  uint    `json:"position"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// swagger:model LinkResponse
type LinkResponse struct {
	Link    LinkDetails `json:"link"`
	Message string      `json:"message"`
}

// swagger:model LinkListResponse
type LinkListResponse struct {
	Data    []LinkDetails `json:"data"`
	Message string        `json:"message"`
}

// swagger:model TemplateDetails
type TemplateDetails struct {
	TemplateID string `json:"template_id" example:"classic"`
	Name       string `json:"name" example:"Classic"`
	Background string `json:"background" example:"#ffffff"`
	Text       string `json:"text" example:"#1f2937"`
	Primary    string `json:"primary" example:"#2563eb"`
	Secondary  string `json:"secondary" example:"#e5e7eb"`
	Accent     string `json:"accent" example:"#f59e0b"`
}

// swagger:model TemplateListResponse
type TemplateListResponse struct {
	Data    []TemplateDetails `json:"data"`
	Count   int               `json:"count"`
	Message string            `json:"message"`
}

// swagger:model PlanPricing
type PlanPricing struct {
	Monthly  float64 `json:"monthly" example:"9.99"`
	Yearly   float64 `json:"yearly" example:"99.99"`
	Currency string  `json:"currency" example:"USD"`
}

// swagger:model PlanLimits
type PlanLimits struct {
	// Maximum number of collections a user may create; -1 means unlimited
	MaxURLs int `json:"max_urls" example:"10"`
	// Maximum number of collections per page; -1 means unlimited
	MaxCollections int `json:"max_collections" example:"3"`
}

// swagger:model PlanOption
type PlanOption struct {
	Name        string      `json:"name" example:"pro"`
	DisplayName string      `json:"display_name" example:"Pro"`
	Pricing     PlanPricing `json:"pricing"`
	Limits      PlanLimits  `json:"limits"`
	Features    []string    `json:"features"`
	Recommended bool        `json:"recommended"`
}

// swagger:model GetPlansResponse
type GetPlansResponse struct {
	Plans   []PlanOption `json:"plans"`
	Message string       `json:"message"`
}

// swagger:model CreateSubscriptionRequest
type CreateSubscriptionRequest struct {
	// Plan to subscribe to: free or pro
	Plan string `json:"plan" example:"pro"`
	// Billing period: monthly or yearly
	BillingPeriod string `json:"billing_period" example:"monthly"`
}

// swagger:model CancelSubscriptionRequest
type CancelSubscriptionRequest struct {
	// Optional reason for cancelling
	Reason *string `json:"reason" example:"too expensive"`
}

// swagger:model SubscriptionDetails
type SubscriptionDetails struct {
	SubscriptionID     string  `json:"subscription_id" example:"sub_5d41402abc4b2a76"`
	Plan               string  `json:"plan" example:"pro"`
	BillingPeriod      string  `json:"billing_period" example:"monthly"`
	Status             string  `json:"status" example:"active"`
	StartDate          string  `json:"start_date" example:"2023-10-01T12:00:00Z"`
	EndDate            string  `json:"end_date" example:"2023-11-01T12:00:00Z"`
	Amount             float64 `json:"amount" example:"9.99"`
	Currency           string  `json:"currency" example:"USD"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	// Whether the subscription is live right now (active and not past
	// its end date)
	IsActive bool `json:"is_active"`
}

// swagger:model GetSubscriptionResponse
type GetSubscriptionResponse struct {
	// The user's current subscription, null when none exists
	Current *SubscriptionDetails `json:"current"`
	// All subscriptions ever created for the user, oldest first
	History []SubscriptionDetails `json:"history"`
	Message string                `json:"message"`
}

// swagger:model CreateSubscriptionResponse
type CreateSubscriptionResponse struct {
	Subscription SubscriptionDetails `json:"subscription"`
	Message      string              `json:"message"`
}

// swagger:model EventLogDetails
type EventLogDetails struct {
	// Event ID
	EID string `json:"eid" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Event category
	Category *string `json:"category" example:"SUBSCRIPTION"`
	// Event status
	Status *string `json:"status" example:"SUCCEEDED"`
	// Event description
	Description *string `json:"description"`
	// Timestamp of the event
	CreatedAt string `json:"created_at"`
}

// swagger:model EventLogListResponse
type EventLogListResponse struct {
	Data       []EventLogDetails `json:"data"`
	Pagination PaginationDetails `json:"pagination"`
	Message    string            `json:"message"`
}
