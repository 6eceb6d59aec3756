package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"grandstay/internal/config"
	"grandstay/internal/database"
	"grandstay/internal/domain"
	"grandstay/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	roomReservations := repository.NewReservationRepository(db, domain.KindRoom)
	serviceReservations := repository.NewReservationRepository(db, domain.KindService)

	log.Println("Running migrations...")
	for _, m := range []interface{ Migrate() error }{
		userRepo, roomRepo, serviceRepo, roomReservations, serviceReservations,
	} {
		if err := m.Migrate(); err != nil {
			log.Fatal("migration failed:", err)
		}
	}

	ctx := context.Background()

	staffHash, err := bcrypt.GenerateFromPassword([]byte("staff-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	guestHash, err := bcrypt.GenerateFromPassword([]byte("guest-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	users := []domain.User{
		{Email: "frontdesk@grandstay.local", PasswordHash: string(staffHash), Role: domain.RoleStaff, FirstName: "Front", LastName: "Desk", Phone: "+10000000001"},
		{Email: "guest@grandstay.local", PasswordHash: string(guestHash), Role: domain.RoleGuest, FirstName: "Ava", MiddleName: "M", LastName: "Reyes", Phone: "+10000000002"},
	}
	for i := range users {
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			log.Println("skip user:", users[i].Email, err)
		}
	}

	rooms := []domain.Room{
		{Name: "Garden View", RoomNumber: "101", RoomType: domain.RoomStandard, Description: "Ground floor, garden side", Price: 120, HourlyRate: 8},
		{Name: "Harbor Deluxe", RoomNumber: "305", RoomType: domain.RoomDeluxe, Description: "Corner room with harbor view", Price: 220, HourlyRate: 14},
		{Name: "Skyline Suite", RoomNumber: "801", RoomType: domain.RoomSuite, Description: "Top floor suite", Price: 450, HourlyRate: 28},
	}
	for i := range rooms {
		if err := roomRepo.Create(ctx, &rooms[i]); err != nil {
			log.Println("skip room:", rooms[i].Name, err)
		}
	}

	services := []domain.Service{
		{Name: "Spa Session", Description: "Full spa access with sauna", Price: 80, Duration: "2 hours"},
		{Name: "Airport Transfer", Description: "Private car, both directions", Price: 60, Duration: "1 hour"},
		{Name: "Event Hall", Description: "Banquet hall with catering", Price: 500, Duration: "4 hours"},
	}
	for i := range services {
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			log.Println("skip service:", services[i].Name, err)
		}
	}

	log.Println("Seed complete.")
}
