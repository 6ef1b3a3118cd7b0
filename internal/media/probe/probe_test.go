package probe

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffprobe-stub")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestInspectTakesFirstVideoAndAudioStream(t *testing.T) {
	stub := writeStub(t, `#!/bin/sh
cat <<'JSON'
{"streams":[
  {"codec_type":"video","codec_name":"hevc","height":2160},
  {"codec_type":"video","codec_name":"mjpeg","height":480},
  {"codec_type":"audio","codec_name":"eac3","channels":6},
  {"codec_type":"audio","codec_name":"aac","channels":2}
]}
JSON
`)

	report, err := NewInspector(stub).Inspect(context.Background(), "/library/movie.mkv")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	want := Report{VideoHeight: 2160, VideoCodec: "hevc", AudioCodec: "eac3", AudioChannels: 6}
	if report != want {
		t.Errorf("report = %+v, want %+v", report, want)
	}
}

func TestInspectReportsToolFailure(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho 'no such file' >&2\nexit 1\n")

	if _, err := NewInspector(stub).Inspect(context.Background(), "/library/missing.mkv"); err == nil {
		t.Error("expected error from failing tool")
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := NewInspector("ffprobe").Inspect(context.Background(), "  "); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestInspectRejectsMalformedOutput(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho not-json\n")

	if _, err := NewInspector(stub).Inspect(context.Background(), "/library/movie.mkv"); err == nil {
		t.Error("expected parse error")
	}
}
