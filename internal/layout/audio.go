package layout

import (
	"context"
	"strings"
	"unicode/utf8"

	"nprstory/internal/domain"
)

const (
	rtmpPrefix     = "rtmp://flash.npr.org/ondemand/mp3:"
	onDemandPrefix = "https://ondemand.npr.org/"
	hlsPrefix      = "https://ondemandhls.npr.org/nprhls/"
	hlsMP3Prefix   = "https://ondemand.npr.org/anon.npr-mp3"
	hlsMaster      = "/master.m3u8"
)

// primaryAudio returns the playable URL of the story's primary audio, or ""
// when none is usable. Downloadable audio uses the mp3 directly; streamable
// audio resolves its m3u playlist, then the rtmp stream, then the HLS one.
func (r *Reconstructor) primaryAudio(ctx context.Context, s *domain.Story) string {
	var file string
	for _, a := range s.Audio {
		if a.Type != "primary" {
			continue
		}
		switch {
		case a.Permissions.DownloadAllowed():
			if mp3 := a.Format.MP3Of("mp3"); mp3 != "" {
				file = mp3
			}
		case a.Permissions.StreamAllowed():
			if f := r.streamURL(ctx, a); f != "" {
				file = f
			}
		}
	}
	return file
}

func (r *Reconstructor) streamURL(ctx context.Context, a domain.Audio) string {
	if m3u := a.Format.MP3Of("m3u"); m3u != "" {
		resp, err := r.http.Get(ctx, m3u)
		if err != nil {
			r.logger.Warn("fetch audio playlist", "url", m3u, "error", err)
			return ""
		}
		if !resp.OK() {
			r.logger.Warn("fetch audio playlist", "url", m3u, "status", resp.Status)
			return ""
		}
		file := playlistEntry(resp.Body)
		if file == "" {
			r.logger.Warn("unusable audio playlist", "url", m3u)
		}
		return file
	}
	if ms := a.Format.MediaStream; ms != "" {
		return strings.Replace(ms, rtmpPrefix, onDemandPrefix, 1)
	}
	if hls := a.Format.HLSOnDemand; hls != "" {
		url := strings.Replace(hls, hlsPrefix, hlsMP3Prefix, 1)
		return strings.Replace(url, hlsMaster, ".mp3", 1)
	}
	return ""
}

// playlistEntry returns the first media line of an m3u playlist, or "" when
// there is none or it is not valid UTF-8.
func playlistEntry(body []byte) string {
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !utf8.ValidString(line) {
			return ""
		}
		return line
	}
	return ""
}
