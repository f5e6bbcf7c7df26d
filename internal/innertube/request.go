package innertube

import (
	"net/http"
	"net/url"
	"strings"
)

type PlayerRequest struct {
	Context        Context `json:"context"`
	VideoID        string  `json:"videoId"`
	ContentCheckOk bool    `json:"contentCheckOk,omitempty"`
	RacyCheckOk    bool    `json:"racyCheckOk,omitempty"`
}

// NextRequest drives the /next endpoint, whose response carries the
// engagement panels (including the searchable transcript panel).
type NextRequest struct {
	Context Context `json:"context"`
	VideoID string  `json:"videoId"`
}

// TranscriptRequest drives /get_transcript with a continuation token
// harvested from the transcript panel.
type TranscriptRequest struct {
	Context Context `json:"context"`
	Params  string  `json:"params"`
}

type Context struct {
	Client  ClientInfo     `json:"client"`
	User    UserContext    `json:"user,omitempty"`
	Request RequestContext `json:"request,omitempty"`
}

type ClientInfo struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	DeviceMake        string `json:"deviceMake,omitempty"`
	DeviceModel       string `json:"deviceModel,omitempty"`
	UserAgent         string `json:"userAgent,omitempty"`
	OsName            string `json:"osName,omitempty"`
	OsVersion         string `json:"osVersion,omitempty"`
	AcceptLanguage    string `json:"hl"`
	TimeZone          string `json:"timeZone"`
	UtcOffsetMinutes  int    `json:"utcOffsetMinutes"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
}

type UserContext struct {
	LockedSafetyMode bool `json:"lockedSafetyMode,omitempty"`
}

type RequestContext struct {
	UseSsl bool `json:"useSsl"`
}

// NewContext builds the declared client context for a profile. hl carries the
// requested caption language so localized track names come back in it.
func NewContext(profile ClientProfile, hl string) Context {
	if strings.TrimSpace(hl) == "" {
		hl = "en"
	}
	clientInfo := ClientInfo{
		ClientName:       profile.Name,
		ClientVersion:    profile.Version,
		UserAgent:        profile.UserAgent,
		AcceptLanguage:   hl,
		TimeZone:         "UTC",
		UtcOffsetMinutes: 0,
	}
	applyClientContextDefaults(&clientInfo, profile)
	return Context{
		Client:  clientInfo,
		Request: RequestContext{UseSsl: true},
	}
}

func NewPlayerRequest(profile ClientProfile, videoID, hl string) *PlayerRequest {
	return &PlayerRequest{
		VideoID:        videoID,
		RacyCheckOk:    true,
		ContentCheckOk: true,
		Context:        NewContext(profile, hl),
	}
}

func NewNextRequest(profile ClientProfile, videoID, hl string) *NextRequest {
	return &NextRequest{
		VideoID: videoID,
		Context: NewContext(profile, hl),
	}
}

func NewTranscriptRequest(profile ClientProfile, params, hl string) *TranscriptRequest {
	return &TranscriptRequest{
		Params:  params,
		Context: NewContext(profile, hl),
	}
}

// EndpointURL builds the internal API URL for a profile and endpoint
// ("player", "next", "get_transcript").
func EndpointURL(profile ClientProfile, endpoint, apiKey string) string {
	host := strings.TrimSpace(profile.Host)
	if host == "" {
		host = "www.youtube.com"
	}
	u := "https://" + host + "/youtubei/v1/" + endpoint + "?prettyPrint=false"
	if apiKey != "" {
		u += "&key=" + url.QueryEscape(apiKey)
	}
	return u
}

// RequestHeaders returns the headers an Innertube POST should carry for the
// given profile.
func RequestHeaders(profile ClientProfile, videoID string) http.Header {
	h := make(http.Header)
	if profile.UserAgent != "" {
		h.Set("User-Agent", profile.UserAgent)
	}
	host := strings.TrimSpace(profile.Host)
	if host == "" {
		host = "www.youtube.com"
	}
	h.Set("Origin", "https://"+host)
	if videoID != "" {
		h.Set("Referer", "https://"+host+"/watch?v="+videoID)
	}
	for k, vals := range profile.Headers {
		for _, v := range vals {
			h.Add(k, v)
		}
	}
	return h
}

func applyClientContextDefaults(client *ClientInfo, profile ClientProfile) {
	switch strings.ToUpper(strings.TrimSpace(profile.Name)) {
	case "ANDROID":
		client.OsName = "Android"
		client.OsVersion = "11"
		client.DeviceMake = "Google"
		client.DeviceModel = "Pixel 5"
		client.AndroidSdkVersion = 30
	case "IOS":
		client.OsName = "iOS"
		client.OsVersion = "18.3.2.22D82"
		client.DeviceMake = "Apple"
		client.DeviceModel = "iPhone16,2"
	case "MWEB":
		client.OsName = "Android"
		client.OsVersion = "11"
		client.DeviceMake = "Google"
		client.DeviceModel = "Pixel 5"
	case "TVHTML5":
		client.OsName = "Cobalt"
		client.OsVersion = "25"
		client.DeviceMake = "Unknown"
		client.DeviceModel = "TV"
	default:
		client.OsName = "Windows"
		client.OsVersion = "10.0"
		client.DeviceMake = "Microsoft"
		client.DeviceModel = "Desktop"
	}
}
