// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/melakufr/waiting-wall/internal/feed"
	"github.com/melakufr/waiting-wall/internal/metrics"
	"github.com/melakufr/waiting-wall/internal/seed"
	"github.com/melakufr/waiting-wall/internal/session"
	"github.com/melakufr/waiting-wall/internal/store"
	"github.com/melakufr/waiting-wall/internal/trending"
)

// runDemo seeds the store, establishes a session (hydrating a stored one
// when present), and walks a scripted interaction: compose, like,
// comment, follow, then prints the filtered feed and notifications.
func runDemo(cmd *cobra.Command, args []string) error {
	records, err := session.OpenRecordStore(session.StorageConfig{
		Path:   cfg.SessionDir(),
		Logger: logger.Slog(),
	})
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer records.Close()

	counters := metrics.New()
	s := store.New(store.Config{
		Sessions:    records,
		Metrics:     counters,
		Logger:      logger.Slog(),
		AuthLatency: cfg.Auth.Latency.Std(),
		SessionTTL:  cfg.Session.TTL.Std(),
		Credentials: store.Credentials{
			Email:    cfg.Auth.DemoEmail,
			Password: cfg.Auth.DemoPassword,
		},
	})

	// Seed the feed and trending rails.
	s.SetPosts(seed.Posts())
	if cfg.Trending.File != "" {
		dataset, err := trending.LoadFile(cfg.Trending.File)
		if err != nil {
			return fmt.Errorf("load trending file: %w", err)
		}
		s.SetTrendingTopics(dataset.Topics)
		s.SetTrendingUsers(dataset.Users)
		if cfg.Trending.Watch {
			watcher, err := trending.Watch(cfg.Trending.File, func(d trending.Dataset) {
				s.SetTrendingTopics(d.Topics)
				s.SetTrendingUsers(d.Users)
			}, logger.Slog())
			if err != nil {
				return fmt.Errorf("watch trending file: %w", err)
			}
			defer watcher.Close()
		}
	} else {
		s.SetTrendingTopics(seed.TrendingTopics())
		s.SetTrendingUsers(seed.TrendingUsers())
	}

	// Restore a stored session, or log in fresh.
	gate := session.NewGate(records, time.Now, logger.Slog())
	if gate.Hydrate(s) {
		logger.Info("session restored", "user", s.CurrentUser().Username)
	} else {
		logger.Info("no valid session, logging in", "email", cfg.Auth.DemoEmail)
		ok, err := s.Login(cmd.Context(), cfg.Auth.DemoEmail, cfg.Auth.DemoPassword)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		if !ok {
			return fmt.Errorf("login rejected for %s", cfg.Auth.DemoEmail)
		}
	}

	out := cmd.OutOrStdout()
	me := *s.CurrentUser()
	now := time.Now()

	// Scripted walk.
	post := feed.Compose(me, "Finally got my appointment after 3 weeks of waiting! #visa", false, now)
	s.AddPost(post)

	anon := feed.Compose(me, "Why does every queue here move backwards?", true, now.Add(time.Millisecond))
	s.AddPost(anon)

	posts := s.Posts()
	target := posts[len(posts)-1]
	s.LikePost(target.ID)
	s.AddComment(feed.ComposeComment(me, target.ID, "Same here, hang in there!", now.Add(2*time.Millisecond)))
	s.FollowUser(target.Author.ID)

	// Render the global feed the way the client would.
	view := feed.View{
		Tab:           s.ActiveTab(),
		Principal:     s.CurrentUser(),
		FollowingList: s.FollowingList(),
		SelectedTopic: s.SelectedTrendingTopic(),
	}
	fmt.Fprintf(out, "Feed (%s):\n", view.Tab)
	for _, p := range feed.Filter(s.Posts(), view) {
		fmt.Fprintf(out, "  @%-12s %3d likes  %s\n", p.Author.Username, p.Likes, p.Content)
	}

	fmt.Fprintf(out, "Trending:\n")
	for _, topic := range s.TrendingTopics() {
		fmt.Fprintf(out, "  %-24s %s posts (%s)\n",
			topic.Name, trending.FormatCount(topic.Count), trending.FormatGrowth(topic.Growth))
	}

	fmt.Fprintf(out, "Unread notifications: %d\n", s.UnreadNotificationsCount())
	for _, n := range s.Notifications() {
		fmt.Fprintf(out, "  [%s] %s\n", n.Kind, n.Message)
	}

	logger.Debug("demo complete",
		"operations_like", counters.OperationCount("like_post"),
		"operations_follow", counters.OperationCount("follow_user"))
	return nil
}
