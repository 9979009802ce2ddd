package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"asistapp.com/asistapp/attendance/model"
	"asistapp.com/asistapp/security"
)

// Mints a token for local API testing. The secret comes from
// ASISTAPP_SIGNING_SECRET (base64), same as the server.
func main() {
	id := flag.Uint("id", 1, "user id")
	code := flag.String("code", "admin", "user code")
	role := flag.String("role", "admin", "role: admin, instructor or student")
	expires := flag.Int64("expires", 12*60*60, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("ASISTAPP_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("ASISTAPP_SIGNING_SECRET is not set")
	}
	if !model.ValidRole(*role) {
		log.Fatalf("unknown role %q", *role)
	}

	token, err := security.CreateIdentityToken(&security.AppIdentity{
		Id:       uint(*id),
		UserName: *code,
		Role:     *role,
	}, secret, *expires)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
