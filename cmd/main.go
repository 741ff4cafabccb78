package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/config"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/db"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/handlers"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/middleware"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/services"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env: %s", err)
	}

	cfg := config.NewConfig()
	if cfg.MongoURI == "" {
		log.Fatal("MONGOURI environment variable not set")
	}
	if cfg.AccessSecret == "" {
		log.Fatal("ACCESS_TOKEN environment variable not set")
	}

	// Connect to MongoDB
	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	log.Println("Successfully connected to MongoDB")

	database := client.Database(cfg.DBName)

	// Initialize services and handlers
	appointmentService := services.NewAppointmentService(database)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	bookingService := services.NewBookingService(database)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	userService := services.NewUserService(database)
	userHandler := handlers.NewUserHandler(userService, cfg.AccessSecret)

	doctorService := services.NewDoctorService(database)
	doctorHandler := handlers.NewDoctorHandler(doctorService)

	stripeService := services.NewStripeService(cfg.StripeSecret, cfg.StripeBaseURL)
	paymentService := services.NewPaymentService(database)
	paymentHandler := handlers.NewPaymentHandler(paymentService, stripeService)

	auth := middleware.RequireJWT(cfg.AccessSecret)
	admin := middleware.RequireAdmin(userService)

	// Set up router
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Doctors portal server is running"))
	}).Methods("GET", "HEAD")

	router.HandleFunc("/appointmentOptions", appointmentHandler.Options).Methods("GET")
	router.HandleFunc("/v2/appointmentOptions", appointmentHandler.OptionsV2).Methods("GET")
	router.HandleFunc("/appointmentSpecialty", appointmentHandler.Specialties).Methods("GET")

	router.Handle("/bookings", auth(http.HandlerFunc(bookingHandler.List))).Methods("GET")
	router.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	router.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods("GET")

	router.Handle("/users", auth(admin(http.HandlerFunc(userHandler.GetUsers)))).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.Handle("/users/admin/{email}", auth(http.HandlerFunc(userHandler.IsAdmin))).Methods("GET")
	router.Handle("/users/admin/{id}", auth(admin(http.HandlerFunc(userHandler.PromoteAdmin)))).Methods("PUT")

	router.Handle("/doctors", auth(admin(http.HandlerFunc(doctorHandler.List)))).Methods("GET")
	router.Handle("/doctors", auth(admin(http.HandlerFunc(doctorHandler.Create)))).Methods("POST")
	router.Handle("/doctors/{id}", auth(admin(http.HandlerFunc(doctorHandler.Delete)))).Methods("DELETE")

	router.HandleFunc("/create-payment-intent", paymentHandler.CreateIntent).Methods("POST")
	router.HandleFunc("/payments", paymentHandler.Record).Methods("POST")

	router.HandleFunc("/jwt", userHandler.IssueToken).Methods("GET")

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins(cfg.AllowedOrigins),
		ghandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		ghandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
	)

	// Start server
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      ghandlers.LoggingHandler(os.Stdout, cors(router)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("Doctors portal server running on port %s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}
