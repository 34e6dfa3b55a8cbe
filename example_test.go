package bigql_test

import (
	"fmt"

	"github.com/eat24/bigql"
	"github.com/eat24/bigql/providers/legacysql"
)

func ExampleBuilder() {
	query := bigql.NewQuery("dataset", "2013_06_appspot_1").
		Select("status", bigql.FieldRender{Alias: "status"}).
		Where(bigql.Cond("start_time", bigql.TypeInteger, bigql.C(bigql.LE, 1371566954))).
		OrderBy(bigql.DESC, "status").
		Query()

	sql, err := legacysql.New().Render(query)
	if err != nil {
		fmt.Println("render:", err)
		return
	}
	fmt.Println(sql)
	// Output: SELECT status as status FROM [dataset.2013_06_appspot_1] WHERE (start_time <= INTEGER('1371566954'))   ORDER BY status desc
}

func ExampleChain() {
	query := bigql.NewQuery("dataset", "2013_06_appspot_1").
		Select("start_time", bigql.FieldRender{
			Alias:  "ts",
			Format: bigql.Chain("SEC_TO_MICRO", "INTEGER", "FORMAT_UTC_USEC"),
		}).
		Query()

	sql, err := legacysql.New().Render(query)
	if err != nil {
		fmt.Println("render:", err)
		return
	}
	fmt.Println(sql)
	// Output: SELECT FORMAT_UTC_USEC(INTEGER(start_time*1000000)) as ts FROM [dataset.2013_06_appspot_1]
}

func ExampleParseYAML() {
	descriptor := []byte(`
dataset: animals
tables:
  date_range: true
  table: pets_
  from_date: "2015-08-23"
  to_date: "2015-10-10"
`)

	query, err := bigql.ParseYAML(descriptor)
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	sql, err := legacysql.New().Render(query)
	if err != nil {
		fmt.Println("render:", err)
		return
	}
	fmt.Println(sql)
	// Output: SELECT * FROM (TABLE_DATE_RANGE([animals.pets_], TIMESTAMP('2015-08-23'), TIMESTAMP('2015-10-10')))
}
