package model

import "testing"

func TestLinkOrDefault(t *testing.T) {
	item := &PodcastItem{}
	if got := item.LinkOrDefault(); got != RadikoLink {
		t.Errorf("item link was incorrect, got: %s, want: %s", got, RadikoLink)
	}
	item.Link = "https://www.tbsradio.jp/"
	if got := item.LinkOrDefault(); got != "https://www.tbsradio.jp/" {
		t.Errorf("item link was incorrect, got: %s, want: https://www.tbsradio.jp/", got)
	}
	channel := &PodcastChannel{}
	if got := channel.LinkOrDefault(); got != RadikoLink {
		t.Errorf("channel link was incorrect, got: %s, want: %s", got, RadikoLink)
	}
	channel.Link = "https://www.joqr.co.jp/"
	if got := channel.LinkOrDefault(); got != "https://www.joqr.co.jp/" {
		t.Errorf("channel link was incorrect, got: %s, want: https://www.joqr.co.jp/", got)
	}
}

func TestLanguageOrDefault(t *testing.T) {
	channel := &PodcastChannel{}
	if got := channel.LanguageOrDefault(); got != "ja" {
		t.Errorf("channel language was incorrect, got: %s, want: ja", got)
	}
	channel.Language = "en"
	if got := channel.LanguageOrDefault(); got != "en" {
		t.Errorf("channel language was incorrect, got: %s, want: en", got)
	}
}
