package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"hrmslite.com/hrms/security"
)

func main() {
	subject := flag.String("subject", "hr-admin", "token subject")
	name := flag.String("name", "", "display name claim")
	email := flag.String("email", "", "email claim")
	expiresIn := flag.Duration("expires", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("HRMS_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("HRMS_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		Subject: *subject,
		Name:    *name,
		Email:   *email,
	}, secret, *expiresIn)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
