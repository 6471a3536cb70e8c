package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/stuffbits"
	"github.com/rawbytedev/stuffbits/pkg/nanbox"
)

// Profiling driver: stuffing and extracting should never touch the heap.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	cell := new(int)
	*cell = 42
	var ptrWords, floatWords uint64
	for i := 0; i < 10000; i++ {
		sp := stuffbits.NewPtr[int, stuffbits.Word64, float64, nanbox.Strategy](cell)
		if _, ok := sp.Ptr(); ok {
			ptrWords++
		}
		so := stuffbits.NewOther[int, stuffbits.Word64, float64, nanbox.Strategy](123.5)
		if _, ok := so.Other(); ok {
			floatWords++
		}
	}
	runtime.KeepAlive(cell)
	log.Printf("round-tripped %d pointer words, %d float words", ptrWords, floatWords)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
