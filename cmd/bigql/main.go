// Command bigql renders a query descriptor file to BigQuery legacy SQL and
// prints the result. It is a thin shell around the legacysql provider: no
// network, no execution, just descriptor in, query text out.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eat24/bigql"
	"github.com/eat24/bigql/providers/legacysql"
)

func main() {
	verbose := flag.Bool("v", false, "report skipped malformed clause sections")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bigql [-v] <descriptor.yaml|descriptor.json>")
		os.Exit(2)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.ErrorLevel)
	if *verbose {
		log = log.Level(zerolog.WarnLevel)
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("read descriptor")
	}

	var query *bigql.Query
	if strings.EqualFold(filepath.Ext(path), ".json") {
		query, err = bigql.ParseJSON(data)
	} else {
		query, err = bigql.ParseYAML(data)
	}
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("decode descriptor")
	}

	sql, err := legacysql.NewWithLogger(log).Render(query)
	if err != nil {
		log.Fatal().Err(err).Msg("render query")
	}
	fmt.Println(sql)
}
