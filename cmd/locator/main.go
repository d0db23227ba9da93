// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/hospitium/catalog"
	"github.com/poiesic/hospitium/index"
	"github.com/poiesic/hospitium/search"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	path := os.Getenv("HOSPITAL_DATA")
	if path == "" {
		path = "hospitals.csv"
	}
	cat := catalog.Load(path)

	ix, err := index.Build(cat.ID(), cat.Records(), cat.Documents())
	if err != nil {
		panic(err)
	}
	searcher, err := search.NewSearcher(ix)
	if err != nil {
		panic(err)
	}

	query := "hospitals in bangalore"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}
	results := searcher.Search(query, 5)

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' %s, %s [%0.3f %s]\n",
			i, hit.Record.Name, hit.Record.Address, hit.Record.City, hit.Score, hit.Relevance)
	}
}
