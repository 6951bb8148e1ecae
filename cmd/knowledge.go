/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalsense/db"
	"github.com/humaidq/vitalsense/embedding"
	"github.com/humaidq/vitalsense/knowledge"
)

var CmdKnowledge = &cli.Command{
	Name:  "knowledge",
	Usage: "Knowledge corpus commands",
	Flags: append([]cli.Flag{databaseURLFlag(), geminiKeyFlag()}, embeddingFlags()...),
	Commands: []*cli.Command{
		{
			Name:   "seed",
			Usage:  "Encode the built-in corpus and store it in the database",
			Action: knowledgeSeed,
		},
		{
			Name:      "query",
			Usage:     "Show the closest knowledge items for <text>",
			ArgsUsage: "<text>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "namespace",
					Value: string(knowledge.NamespaceBiomarkers),
					Usage: "namespace to search (biomarkers or nutrition_guidelines)",
				},
				&cli.IntFlag{
					Name:  "top-k",
					Value: knowledge.BiomarkerTopK,
					Usage: "number of matches to show",
				},
			},
			Action: knowledgeQuery,
		},
	},
}

// seededCorpus is a persisted corpus that records which encoder produced
// its vectors.
type seededCorpus interface {
	knowledge.Store
	KnowledgeEncoders(ctx context.Context, ns knowledge.Namespace) ([]string, error)
	KnowledgeItemCount(ctx context.Context, ns knowledge.Namespace) (int, error)
}

// knowledgeStore returns corpus when both namespaces were seeded by enc,
// otherwise an in-memory store holding the built-in corpus encoded by enc.
// Vectors from another encoder are not comparable, so such a corpus is
// skipped until it is re-seeded.
func knowledgeStore(ctx context.Context, enc embedding.Encoder, corpus seededCorpus) (knowledge.Store, error) {
	if corpus != nil {
		usable := true
		items := 0

		for _, ns := range []knowledge.Namespace{knowledge.NamespaceBiomarkers, knowledge.NamespaceNutrition} {
			encoders, err := corpus.KnowledgeEncoders(ctx, ns)
			if err != nil {
				return nil, fmt.Errorf("failed to inspect knowledge corpus: %w", err)
			}

			if len(encoders) == 0 {
				usable = false
				continue
			}

			if len(encoders) != 1 || encoders[0] != enc.Name() {
				knowledgeLogger.Warn("Knowledge corpus was seeded with a different encoder, run \"knowledge seed\" to replace it",
					"namespace", ns, "seeded", strings.Join(encoders, ","), "encoder", enc.Name())

				usable = false
			}

			n, err := corpus.KnowledgeItemCount(ctx, ns)
			if err != nil {
				return nil, fmt.Errorf("failed to count knowledge items: %w", err)
			}

			items += n
		}

		if usable {
			knowledgeLogger.Info("Using knowledge corpus from database", "items", items, "encoder", enc.Name())
			return corpus, nil
		}
	}

	mem := knowledge.NewMemoryStore()

	n, err := knowledge.Ingest(ctx, enc, mem, knowledge.Corpus())
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in knowledge corpus: %w", err)
	}

	knowledgeLogger.Info("Using in-memory knowledge corpus", "items", n, "encoder", enc.Name())

	return mem, nil
}

func knowledgeSeed(ctx context.Context, cmd *cli.Command) error {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return errDatabaseURLRequired
	}

	store, err := db.Open(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to sync schema: %w", err)
	}

	enc, err := newEncoder(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to create encoder: %w", err)
	}

	n, err := knowledge.Ingest(ctx, enc, store, knowledge.Corpus())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Root().Writer, "Seeded %d knowledge items with the %s encoder\n", n, enc.Name())

	return nil
}

func knowledgeQuery(ctx context.Context, cmd *cli.Command) error {
	text := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if text == "" {
		return errQueryTextRequired
	}

	ns := knowledge.Namespace(cmd.String("namespace"))
	if !ns.Valid() {
		return fmt.Errorf("%w: %q", knowledge.ErrUnknownNamespace, ns)
	}

	enc, err := newEncoder(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to create encoder: %w", err)
	}

	var corpus seededCorpus

	if databaseURL := cmd.String("database-url"); databaseURL != "" {
		store, err := db.Open(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer store.Close()

		corpus = store
	}

	kstore, err := knowledgeStore(ctx, enc, corpus)
	if err != nil {
		return err
	}

	vec, err := enc.Encode(ctx, strings.ToLower(text))
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	matches, err := knowledge.NewRetriever(kstore, enc.Dimensions()).Query(ctx, ns, vec, cmd.Int("top-k"))
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	for _, m := range matches {
		fmt.Fprintf(w, "%.4f\t%s\t%s\n", m.Score, m.ID, m.Text)
	}

	return nil
}
