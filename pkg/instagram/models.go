package instagram

import (
	"encoding/json"
	"reflect"
	"strings"
)

// UserProfile represents a user's public profile. Fields the platform
// sends that the struct does not know about are kept in Extra.
type UserProfile struct {
	ID                     string  `json:"id"`
	Username               string  `json:"username"`
	FullName               string  `json:"full_name"`
	Biography              string  `json:"biography"`
	ExternalURL            *string `json:"external_url"`
	ExternalURLLinkshimmed *string `json:"external_url_linkshimmed"`
	ProfilePicURL          string  `json:"profile_pic_url"`
	ProfilePicURLHD        string  `json:"profile_pic_url_hd"`

	IsPrivate         bool    `json:"is_private"`
	IsVerified        bool    `json:"is_verified"`
	IsBusinessAccount bool    `json:"is_business_account"`
	IsJoinedRecently  bool    `json:"is_joined_recently"`
	HasChannel        bool    `json:"has_channel"`
	HasAREffects      bool    `json:"has_ar_effects"`
	CountryBlock      bool    `json:"country_block"`
	CategoryID        string  `json:"category_id"`
	BusinessCategory  string  `json:"business_category_name"`
	OverallCategory   *string `json:"overall_category_name"`
	ConnectedFBPage   *string `json:"connected_fb_page"`

	HighlightReelCount int `json:"highlight_reel_count"`

	// Follow relationship relative to the viewer
	FollowedByViewer   bool  `json:"followed_by_viewer"`
	FollowsViewer      bool  `json:"follows_viewer"`
	RequestedByViewer  bool  `json:"requested_by_viewer"`
	HasRequestedViewer bool  `json:"has_requested_viewer"`
	BlockedByViewer    bool  `json:"blocked_by_viewer"`
	HasBlockedViewer   bool  `json:"has_blocked_viewer"`
	RestrictedByViewer *bool `json:"restricted_by_viewer"`

	// Extra holds fields the platform sent that are not modeled above
	Extra map[string]json.RawMessage `json:"-"`
}

// userProfileFieldNames holds the json tag names of UserProfile,
// collected once so UnmarshalJSON can separate known from extra fields.
var userProfileFieldNames = jsonFieldNames(reflect.TypeOf(UserProfile{}))

func jsonFieldNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		names = append(names, tag)
	}
	return names
}

// UnmarshalJSON decodes the known fields and collects everything else
// into Extra.
func (u *UserProfile) UnmarshalJSON(data []byte) error {
	type plain UserProfile
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, name := range userProfileFieldNames {
		delete(fields, name)
	}

	*u = UserProfile(known)
	if len(fields) > 0 {
		u.Extra = fields
	}
	return nil
}

// UserFeed is one page of a user's posts. Count is the platform-reported
// total for the account, independent of how many media this page holds.
type UserFeed struct {
	Count    int       `json:"count"`
	Medias   MediaList `json:"edges"`
	PageInfo PageInfo  `json:"page_info"`
}

// PageInfo carries feed paging state. EndCursor is opaque and must be
// passed back verbatim to continue paging.
type PageInfo struct {
	EndCursor   *string `json:"end_cursor"`
	HasNextPage bool    `json:"has_next_page"`
}

// Media represents a single post
type Media struct {
	ID        string  `json:"id"`
	Shortcode string  `json:"shortcode"`
	Caption   Caption `json:"edge_media_to_caption"`
	Likes     Count   `json:"edge_media_preview_like"`

	Comments         MediaComments   `json:"edge_media_to_comment"`
	CommentsDisabled bool            `json:"comments_disabled"`
	Dimensions       MediaDimensions `json:"dimensions"`
	DisplayURL       string          `json:"display_url"`
	IsVideo          bool            `json:"is_video"`
	MediaPreview     *string         `json:"media_preview"`
	Owner            MediaOwner      `json:"owner"`
	TakenAtTimestamp int64           `json:"taken_at_timestamp"`

	Thumbnails   []ThumbnailResource `json:"thumbnail_resources"`
	ThumbnailSrc string              `json:"thumbnail_src"`

	TrackingToken string `json:"tracking_token"`

	ViewerCanReshare           bool `json:"viewer_can_reshare"`
	ViewerHasLiked             bool `json:"viewer_has_liked"`
	ViewerHasSaved             bool `json:"viewer_has_saved"`
	ViewerHasSavedToCollection bool `json:"viewer_has_saved_to_collection"`
	ViewerInPhotoOfYou         bool `json:"viewer_in_photo_of_you"`
}

// MediaDimensions holds a media's pixel dimensions
type MediaDimensions struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// MediaComments summarizes the comments on a media
type MediaComments struct {
	Count    int         `json:"count"`
	Data     CommentList `json:"edges"`
	PageInfo PageInfo    `json:"page_info"`
}

// MediaComment represents one comment on a media
type MediaComment struct {
	ID              string       `json:"id"`
	Text            string       `json:"text"`
	CreatedAt       int64        `json:"created_at"`
	DidReportAsSpam bool         `json:"did_report_as_spam"`
	ViewerHasLiked  bool         `json:"viewer_has_liked"`
	Owner           CommentOwner `json:"owner"`
}

// CommentOwner summarizes a comment's author
type CommentOwner struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	IsVerified    bool   `json:"is_verified"`
	ProfilePicURL string `json:"profile_pic_url"`
}

// MediaOwner references the account a media belongs to
type MediaOwner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ThumbnailResource is one thumbnail rendition of a media
type ThumbnailResource struct {
	Src    string `json:"src"`
	Height int    `json:"config_height"`
	Width  int    `json:"config_width"`
}

// LoginResult holds the facts returned by a successful login submission
type LoginResult struct {
	Authenticated bool   `json:"authenticated"`
	User          bool   `json:"user"`
	UserID        string `json:"userId"`
	OneTapPrompt  bool   `json:"oneTapPrompt"`
	Status        string `json:"status"`
}

// TwoFactorChallenge holds the challenge details the platform returns
// when an account requires a second factor.
type TwoFactorChallenge struct {
	Message                   string                    `json:"message"`
	TwoFactorRequired         bool                      `json:"two_factor_required"`
	TwoFactorInfo             TwoFactorInfo             `json:"two_factor_info"`
	PhoneVerificationSettings PhoneVerificationSettings `json:"phone_verification_settings"`
	Status                    string                    `json:"status"`
}

// TwoFactorInfo identifies a pending two-factor challenge
type TwoFactorInfo struct {
	Username                  string                    `json:"username"`
	SMSTwoFactorOn            bool                      `json:"sms_two_factor_on"`
	TOTPTwoFactorOn           bool                      `json:"totp_two_factor_on"`
	ObfuscatedPhoneNumber     string                    `json:"obfuscated_phone_number"`
	TwoFactorIdentifier       string                    `json:"two_factor_identifier"`
	ShowMessengerCodeOption   bool                      `json:"show_messenger_code_option"`
	ShowNewLoginScreen        bool                      `json:"show_new_login_screen"`
	ShowTrustedDeviceOption   bool                      `json:"show_trusted_device_option"`
	PhoneVerificationSettings PhoneVerificationSettings `json:"phone_verification_settings"`
}

// PhoneVerificationSettings describes the SMS verification limits
// attached to a two-factor challenge.
type PhoneVerificationSettings struct {
	MaxSMSCount              int  `json:"max_sms_count"`
	ResendSMSDelaySec        int  `json:"resend_sms_delay_sec"`
	RobocallCountDownTimeSec int  `json:"robocall_count_down_time_sec"`
	RobocallAfterMaxSMS      bool `json:"robocall_after_max_sms"`
}
