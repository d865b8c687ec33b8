// Command stubserver runs the in-memory backend double on a local port so
// the CLI can be exercised without the real backend.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/Purvesh8762/user-management/internal/stubserver"
)

func main() {

	addr := flag.String("addr", ":8082", "listen address")
	secret := flag.String("secret", "local-dev-secret", "token signing secret")
	flag.Parse()

	srv := stubserver.New([]byte(*secret))

	log.Printf("stub backend listening on %s", *addr)
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		log.Fatalf("%v", err)
	}
}
