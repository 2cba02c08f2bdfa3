package instagram

import "encoding/json"

// profileEnvelope is the wrapper around a profile fetch response
type profileEnvelope struct {
	GraphQL struct {
		User UserProfile `json:"user"`
	} `json:"graphql"`
}

// feedEnvelope is the wrapper around a feed fetch response
type feedEnvelope struct {
	Data struct {
		User struct {
			Feed UserFeed `json:"edge_owner_to_timeline_media"`
		} `json:"user"`
	} `json:"data"`
}

// loginOutcome is the decoded result of a login submission. Exactly one
// of the two fields is set.
type loginOutcome struct {
	success   *LoginResult
	twoFactor *TwoFactorChallenge
}

// loginShapeMatcher reports whether a response body structurally matches
// one known login response shape.
type loginShapeMatcher func(body []byte) (*loginOutcome, bool)

// loginShapeMatchers is tried in order on a login response body. The
// platform sends no discriminant field, so the shapes are told apart
// purely by which required keys are present. The order is part of the
// contract: the success shape wins over the two-factor shape whenever a
// body satisfies both.
var loginShapeMatchers = []loginShapeMatcher{
	matchLoginSuccess,
	matchTwoFactorChallenge,
}

func decodeLoginResponse(body []byte) (*loginOutcome, bool) {
	for _, match := range loginShapeMatchers {
		if outcome, ok := match(body); ok {
			return outcome, true
		}
	}
	return nil, false
}

func matchLoginSuccess(body []byte) (*loginOutcome, bool) {
	var raw struct {
		Authenticated *bool   `json:"authenticated"`
		User          *bool   `json:"user"`
		UserID        *string `json:"userId"`
		OneTapPrompt  *bool   `json:"oneTapPrompt"`
		Status        *string `json:"status"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, false
	}
	if raw.Authenticated == nil || raw.User == nil || raw.UserID == nil ||
		raw.OneTapPrompt == nil || raw.Status == nil {
		return nil, false
	}

	return &loginOutcome{success: &LoginResult{
		Authenticated: *raw.Authenticated,
		User:          *raw.User,
		UserID:        *raw.UserID,
		OneTapPrompt:  *raw.OneTapPrompt,
		Status:        *raw.Status,
	}}, true
}

func matchTwoFactorChallenge(body []byte) (*loginOutcome, bool) {
	var raw struct {
		Message                   *string                    `json:"message"`
		TwoFactorRequired         *bool                      `json:"two_factor_required"`
		TwoFactorInfo             *TwoFactorInfo             `json:"two_factor_info"`
		PhoneVerificationSettings *PhoneVerificationSettings `json:"phone_verification_settings"`
		Status                    *string                    `json:"status"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, false
	}
	if raw.Message == nil || raw.TwoFactorRequired == nil || raw.TwoFactorInfo == nil ||
		raw.PhoneVerificationSettings == nil || raw.Status == nil {
		return nil, false
	}

	return &loginOutcome{twoFactor: &TwoFactorChallenge{
		Message:                   *raw.Message,
		TwoFactorRequired:         *raw.TwoFactorRequired,
		TwoFactorInfo:             *raw.TwoFactorInfo,
		PhoneVerificationSettings: *raw.PhoneVerificationSettings,
		Status:                    *raw.Status,
	}}, true
}
