package extract

import "strings"

var (
	cardSelector = strings.Join([]string{
		"ytd-video-renderer",
		"ytd-rich-item-renderer",
		"ytd-rich-grid-media",
		"ytd-rich-grid-slim-media",
		"ytd-rich-grid-radio-renderer",
		"ytd-compact-video-renderer",
		"ytd-compact-radio-renderer",
		"ytd-grid-video-renderer",
		"ytd-reel-item-renderer",
		"ytd-playlist-video-renderer",
		"ytd-playlist-renderer",
		"ytd-radio-renderer",
		"yt-lockup-view-model",
	}, ",")

	// cardRootSelector lists the outermost wrappers first.
	cardRootSelector = strings.Join([]string{
		"ytd-rich-item-renderer",
		"ytd-video-renderer",
		"ytd-compact-video-renderer",
		"ytd-grid-video-renderer",
		"ytd-playlist-video-renderer",
		"ytd-playlist-renderer",
		"ytd-radio-renderer",
		"ytd-compact-radio-renderer",
		"ytd-rich-grid-radio-renderer",
		"ytd-reel-item-renderer",
		"yt-lockup-view-model",
		"ytd-rich-grid-media",
		"ytd-rich-grid-slim-media",
	}, ",")

	titleSelector = strings.Join([]string{
		"#video-title",
		"#video-title-link",
		"a#video-title-link",
		"yt-formatted-string#video-title",
		"a.yt-lockup-view-model-wiz__title",
		`h3 a[href*="/watch"]`,
		`a[href*="list="]`,
	}, ",")

	videoLinkSelector = strings.Join([]string{
		"a#video-title-link[href]",
		"a#video-title[href]",
		"a.yt-lockup-view-model-wiz__title[href]",
		`a[href*="/watch"]`,
		`a[href*="/shorts/"]`,
	}, ",")

	channelLinkSelector = strings.Join([]string{
		"ytd-channel-name a[href]",
		"#channel-name a[href]",
		"#owner-name a[href]",
		"#text a[href]",
		`yt-lockup-view-model a[href^="/@"]`,
		`yt-lockup-view-model a[href^="/channel/"]`,
		`yt-lockup-view-model a[href^="/c/"]`,
		`yt-lockup-view-model a[href^="/user/"]`,
	}, ",")
)

const (
	listLinkSelector         = `a[href*="list="]`
	fallbackSelector         = `a[href*="/watch"][title], a[title]`
	miniplayerSelector       = "ytd-miniplayer"
	subscribedButtonSelector = "ytd-subscribe-button-renderer[subscribed], ytd-subscribe-button-renderer[is-subscribed]"
)
