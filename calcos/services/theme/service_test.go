//go:build !tinygo

package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"bluecalc/calcos/kernel"
	"bluecalc/calcos/proto"
	palette "bluecalc/calcos/theme"
)

func TestLoadSkipsUnchangedContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/theme.yaml", []byte("dark: \"#101010\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(fs, "/theme.yaml", false, kernel.Capability{}, kernel.Capability{})

	payload, sum, changed, err := s.load()
	if err != nil || !changed {
		t.Fatalf("first load: changed=%v err=%v", changed, err)
	}
	colors, ok := proto.DecodeThemePayload(payload)
	if !ok {
		t.Fatal("payload does not decode")
	}
	got, ok := palette.FromColors(colors)
	if !ok || palette.Hex(got.Dark) != "#101010" {
		t.Fatalf("unexpected palette dark=%s ok=%v", palette.Hex(got.Dark), ok)
	}
	s.commit(sum)

	if _, _, changed, err := s.load(); err != nil || changed {
		t.Fatalf("reload of same content: changed=%v err=%v", changed, err)
	}

	if err := afero.WriteFile(fs, "/theme.yaml", []byte("dark: \"#202020\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, changed, err := s.load(); err != nil || !changed {
		t.Fatalf("reload of new content: changed=%v err=%v", changed, err)
	}
}

func TestLoadUncommittedStaysChanged(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/t.toml", []byte("text = \"#000000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(fs, "/t.toml", false, kernel.Capability{}, kernel.Capability{})
	for i := 0; i < 2; i++ {
		if _, _, changed, err := s.load(); err != nil || !changed {
			t.Fatalf("load %d: changed=%v err=%v", i, changed, err)
		}
	}
}

type collector struct {
	in  kernel.Capability
	out chan kernel.Message
}

func (c *collector) Run(ctx *kernel.Context) {
	for {
		msg, ok := ctx.Recv(c.in)
		if !ok {
			return
		}
		c.out <- msg
	}
}

func waitTheme(t *testing.T, k *kernel.Kernel, out chan kernel.Message) palette.Theme {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case msg := <-out:
			if proto.Kind(msg.Kind) != proto.MsgThemeSet {
				continue
			}
			colors, ok := proto.DecodeThemePayload(msg.Payload())
			if !ok {
				t.Fatal("bad theme payload")
			}
			th, ok := palette.FromColors(colors)
			if !ok {
				t.Fatal("bad palette size")
			}
			return th
		case <-deadline:
			t.Fatal("timed out waiting for theme")
		default:
			k.Tick()
			time.Sleep(time.Millisecond)
		}
	}
}

func TestRunWatchesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("accent: \"#111111\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	k := kernel.New()
	themeEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := make(chan kernel.Message, 16)
	logs := make(chan kernel.Message, 64)
	k.AddTask(&collector{in: themeEP.Restrict(kernel.RightRecv), out: out})
	k.AddTask(&collector{in: logEP.Restrict(kernel.RightRecv), out: logs})

	s := New(afero.NewOsFs(), path, true, themeEP.Restrict(kernel.RightSend), logEP.Restrict(kernel.RightSend))
	s.SetDebounce(10 * time.Millisecond)
	k.AddTask(s)
	defer s.Stop()

	if got := palette.Hex(waitTheme(t, k, out).Accent); got != "#111111" {
		t.Fatalf("initial accent = %s", got)
	}

	// Give the watcher time to register before editing.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("accent: \"#222222\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got := waitTheme(t, k, out)
	want := palette.Default()
	want.Accent, _ = palette.ParseHex("#222222")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("reloaded theme mismatch (-want +got):\n%s", diff)
	}
}
