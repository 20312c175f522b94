package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lathegears/config"
	"github.com/katalvlaran/lathegears/session"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

// watchConfig re-runs the query each time the config file is written,
// until ctx ends. A broken config is reported and the previous one kept.
func watchConfig(ctx context.Context, sess *session.Session, a arguments, stdout io.Writer, log zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file by rename.
	target := filepath.Clean(a.configPath)
	if err = watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	log.Info().Str("file", target).Msg("watching")

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				log.Debug().Stringer("op", event.Op).Str("file", event.Name).Msg("fsnotify event")
				timer.Reset(watchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("fsnotify error")

		case <-timer.C:
			log = reload(ctx, sess, a, stdout, log)
		}
	}
}

// reload applies the config file and re-runs the query. It returns the
// logger at the level the new config asks for.
func reload(ctx context.Context, sess *session.Session, a arguments, stdout io.Writer, log zerolog.Logger) zerolog.Logger {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		log.Warn().Err(err).Msg("config reload failed, keeping previous")
		return log
	}
	if cfg.Fingerprint() == sess.Config().Fingerprint() {
		log.Debug().Msg("config unchanged")
	}
	log = log.Level(levelFor(cfg, a))
	sess.SetLogger(log)
	sess.Reconfigure(cfg)
	if err = runOnce(ctx, sess, a, stdout); err != nil {
		log.Error().Err(err).Msg("run")
	}

	return log
}
