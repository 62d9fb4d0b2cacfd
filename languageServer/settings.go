package languageServer

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/syncthing/notify"

	"github.com/assembly-tolly/assembly-language-server/config"
	"github.com/assembly-tolly/assembly-language-server/util"
)

// quiet period before a changed settings file is reloaded
const settingsDebounce = 100 * time.Millisecond

func (h *handler) setWorkspaceRoot(conn *jsonrpc2.Conn, root string) {
	h.mu.Lock()
	h.workspaceRoot = root
	h.mu.Unlock()
	if root == "" {
		return
	}
	if err := h.reloadSettings(); err != nil {
		util.LogErrorF("AssEmbly Language Server: %v", err)
	}
	if h.watch {
		h.watchSettings(conn, filepath.Join(root, config.WorkspaceSettingsPath))
	}
}

// reloadSettings rebuilds the settings from the starting settings, the
// workspace settings file and what the client sent, in that order.
func (h *handler) reloadSettings() error {
	h.mu.Lock()
	s := h.base
	root := h.workspaceRoot
	overlays := []json.RawMessage{h.initOptions, h.clientConfig}
	h.mu.Unlock()

	var fileErr error
	if root != "" {
		fileErr = config.LoadWorkspaceFile(filepath.Join(root, config.WorkspaceSettingsPath), &s)
	}
	for _, raw := range overlays {
		if err := config.ApplyLSP(raw, &s); err != nil {
			return err
		}
	}

	h.mu.Lock()
	h.settings = s
	h.mu.Unlock()
	util.LogF("AssEmbly Language Server: linter settings %+v", s.Linting)
	return fileErr
}

func (h *handler) applyClientSettings(raw json.RawMessage, initialization bool) error {
	// reject settings that do not decode before keeping them
	probe := h.base
	if err := config.ApplyLSP(raw, &probe); err != nil {
		return err
	}
	h.mu.Lock()
	if initialization {
		h.initOptions = raw
	} else {
		h.clientConfig = raw
	}
	h.mu.Unlock()
	return h.reloadSettings()
}

func (h *handler) configurationChangeNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidChangeConfigurationParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}
	if err := h.applyClientSettings(decodedParams.Settings, false); err != nil {
		util.LogErrorF("AssEmbly Language Server: ignoring settings: %v", err)
		return
	}
	h.scheduleLint(conn)
}

// watchSettings reloads the settings and relints whenever the settings file
// changes.
func (h *handler) watchSettings(conn *jsonrpc2.Conn, settingsFile string) {
	dir := filepath.Dir(settingsFile)
	name := filepath.Base(settingsFile)

	// buffered so no event is dropped while a reload runs
	c := make(chan notify.EventInfo, 1)
	if err := notify.Watch(dir, c, notify.Create, notify.Write, notify.Remove, notify.Rename); err != nil {
		util.LogF("AssEmbly Language Server: not watching %s: %v", dir, err)
		return
	}

	h.mu.Lock()
	previous := h.stopWatching
	h.stopWatching = func() { notify.Stop(c) }
	h.mu.Unlock()
	if previous != nil {
		previous()
	}
	util.LogF("AssEmbly Language Server: watching %s for changes", settingsFile)

	go func() {
		var timer *time.Timer
		timeout := func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}
		for {
			select {
			case event := <-c:
				if filepath.Base(event.Path()) != name {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(settingsDebounce)
			case <-timeout():
				timer = nil
				if err := h.reloadSettings(); err != nil {
					util.LogErrorF("AssEmbly Language Server: %v", err)
				}
				h.scheduleLint(conn)
			case <-h.baseCtx.Done():
				return
			}
		}
	}()
}
