package main

import (
	"flag"
	"fmt"

	"club-manager/app/config"
	"club-manager/app/database"
	"club-manager/app/models"
	"club-manager/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", models.RoleAdmin, "role: admin, coach or athlete")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		fmt.Println("Usage: add_user -email ... -password ... -first-name ... -last-name ... [-role admin]")
		return
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user, []string{*role}); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n",
		user.FirstName, user.LastName, user.Email, *role)
}
