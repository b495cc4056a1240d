package domain

import "time"

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLogin  = "login"
	ActionLogout = "logout"
)

// Entity names used in the activity log and in metrics labels.
const (
	EntityUser           = "user"
	EntityClient         = "client"
	EntityTeamMember     = "team_member"
	EntitySocialMedia    = "social_media_kpi"
	EntityWebsiteSEO     = "website_seo_kpi"
	EntityAds            = "ads_kpi"
	EntityEmail          = "email_kpi"
	EntityClientResponse = "client_response"
	EntityTeamKPI        = "team_kpi"
)

// Activity is one row of the audit feed shown on the dashboard.
type Activity struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id"`
	Username    string    `json:"username"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    *int64    `json:"entity_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewActivity builds an entry attributed to actor. A zero actor (e.g. a
// failed token lookup) produces an anonymous entry.
func NewActivity(actor Actor, action, entityType string, entityID int64, description string) Activity {
	a := Activity{
		Username:    actor.Username,
		Action:      action,
		EntityType:  entityType,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if actor.UserID != 0 {
		uid := actor.UserID
		a.UserID = &uid
	}
	if entityID != 0 {
		eid := entityID
		a.EntityID = &eid
	}
	return a
}

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	EntityType string
	Action     string
	UserID     int64
	Page       int
	Limit      int
}
