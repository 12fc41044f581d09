// --------------------------------------------------------------------------------
// Author: Giovanna Cardenas
//
// This file is part of a software project developed by Giovanna Cardenas.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/internal/corpus"
	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/internal/pipeline"
	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/pkg/config"
	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/pkg/db"
	"github.com/Giovanna-Cardenas/LSA-TFIDF-TextClassifier/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := utils.NewLogger("textclassifier ")
	if *verbose {
		logger.EnableDebug()
	}

	path := *configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Fatal("loading config: %v", err)
	}

	c, err := loadCorpus(cfg)
	if err != nil {
		logger.Fatal("loading corpus: %v", err)
	}
	logger.Info("loaded %d documents (%d labeled %s)", c.Len(), c.Positives(), cfg.Corpus.Marker)

	// The two configurations run independently: a failure in one does not
	// keep the other from reporting.
	for _, stemming := range []bool{false, true} {
		opts := pipeline.Options{
			Stemming:     stemming,
			Concepts:     cfg.Pipeline.Concepts,
			Trees:        cfg.Pipeline.Trees,
			TestFraction: cfg.Pipeline.TestFraction,
			Seed:         cfg.Pipeline.Seed,
		}

		result, err := pipeline.Run(c, opts)
		if err != nil {
			logger.Error("pipeline (stemming=%v) failed: %v", stemming, err)
			continue
		}

		logger.Info("stemming=%v vocabulary=%d train=%d test=%d",
			stemming, result.VocabularySize, result.TrainSize, result.TestSize)
		fmt.Printf("stemming=%v\n%s\n", stemming, result.Report)
	}
}

func loadCorpus(cfg *config.Config) (*corpus.Corpus, error) {
	switch cfg.Corpus.Source {
	case "dir":
		return corpus.LoadDir(cfg.Corpus.Path, cfg.Corpus.Marker)
	case "archive":
		return corpus.LoadArchive(cfg.Corpus.Path, cfg.Corpus.Marker)
	case "csv":
		return corpus.LoadCSV(cfg.Corpus.Path)
	case "postgres":
		ctx := context.Background()
		pool, err := db.NewConnection(ctx, db.Creds{
			Host:     cfg.DBCreds.Host,
			Port:     cfg.DBCreds.Port,
			Username: cfg.DBCreds.Username,
			Password: cfg.DBCreds.Password,
			Database: cfg.DBCreds.Database,
		})
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return corpus.LoadPostgres(ctx, pool, cfg.Corpus.Table)
	default:
		return nil, fmt.Errorf("unknown corpus source %q", cfg.Corpus.Source)
	}
}
