package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes contents to path, creating parent directories, and
// returns path.
func WriteFile(t testing.TB, path, contents string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ListingHTML is a small saved listing page with one card per supported
// outcome and a subscribed channel link.
const ListingHTML = `<!doctype html>
<html><body>
<ytd-guide-renderer><a href="/@SubscribedChannel">Subscribed Channel</a></ytd-guide-renderer>
<ytd-rich-item-renderer>
  <a id="video-title-link" href="/watch?v=en1">Every Seinfeld Episode Based On A True Story</a>
  <ytd-channel-name><a href="/@SitcomClips">Sitcom Clips</a></ytd-channel-name>
</ytd-rich-item-renderer>
<ytd-rich-item-renderer>
  <a id="video-title-link" href="/watch?v=fr1">Les plus beaux endroits dans le monde avec nous</a>
  <ytd-channel-name><a href="/@Voyage">Voyage</a></ytd-channel-name>
</ytd-rich-item-renderer>
<ytd-rich-item-renderer>
  <a id="video-title-link" href="/watch?v=es1">Los mejores momentos del partido de esta temporada</a>
  <ytd-channel-name><a href="/@SubscribedChannel">Subscribed Channel</a></ytd-channel-name>
</ytd-rich-item-renderer>
<ytd-rich-item-renderer>
  <a id="video-title-link" href="/watch?v=zh1">今天的中文课程非常有趣</a>
  <ytd-channel-name><a href="/channel/UCzhongwen">Zhongwen</a></ytd-channel-name>
</ytd-rich-item-renderer>
<ytd-rich-item-renderer>
  <a id="video-title-link" href="/watch?v=unk1">Vlog 2024</a>
  <ytd-channel-name><a href="/@Vlogger">Vlogger</a></ytd-channel-name>
</ytd-rich-item-renderer>
</body></html>`
