package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JustaPenguin/pilot-ratings"
	"go.etcd.io/bbolt"
)

var (
	boltStore, jsonStore string
	toBolt               bool
)

func init() {
	flag.StringVar(&boltStore, "bolt", "", "the roster in bolt format")
	flag.StringVar(&jsonStore, "json", "", "the roster in json format")
	flag.BoolVar(&toBolt, "to-bolt", false, "convert json to bolt instead of bolt to json")
	flag.Parse()
}

func main() {
	if boltStore == "" || jsonStore == "" {
		fmt.Println("you must specify both stores. run with help args to find out more")
		os.Exit(1)
	}

	bdb, err := bbolt.Open(boltStore, 0644, nil)

	if err != nil {
		panic(err)
	}

	defer bdb.Close()

	var from, to pilotratings.RosterStore = pilotratings.NewBoltStore(bdb), pilotratings.NewJSONStore(jsonStore)

	if toBolt {
		from, to = to, from
	}

	n, err := pilotratings.ConvertRoster(from, to)

	if err != nil {
		panic(err)
	}

	fmt.Printf("converted %d pilots\n", n)
}
