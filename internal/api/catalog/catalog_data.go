package catalog

import "github.com/vachspati/smart--trip/internal/types"

// Static catalog data. These endpoints are mocks: fixed result sets that echo
// the caller's search parameters, with no live provider integration.

type Destination struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Flight struct {
	ID         int    `json:"id"`
	Airline    string `json:"airline"`
	From       string `json:"from"`
	To         string `json:"to"`
	DepartTime string `json:"departTime"`
	ArriveTime string `json:"arriveTime"`
	Duration   string `json:"duration"`
	Price      int    `json:"price"`
	Stops      int    `json:"stops"`
}

type Hotel struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Rating    int      `json:"rating"`
	Price     int      `json:"price"`
	Currency  string   `json:"currency"`
	Amenities []string `json:"amenities"`
	Image     string   `json:"image"`
}

type Car struct {
	ID          int      `json:"id"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	PricePerDay int      `json:"pricePerDay"`
	Currency    string   `json:"currency"`
	Features    []string `json:"features"`
	Image       string   `json:"image"`
}

type Restaurant struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	PriceRange  string   `json:"priceRange"`
	OpenHours   string   `json:"openHours"`
	Specialties []string `json:"specialties"`
	Image       string   `json:"image"`
}

type FlightSearchRequest struct {
	From       string           `json:"from,omitempty"`
	To         string           `json:"to,omitempty"`
	DepartDate string           `json:"departDate,omitempty"`
	ReturnDate string           `json:"returnDate,omitempty"`
	Passengers types.FlexString `json:"passengers,omitempty"`
}

type HotelSearchRequest struct {
	Destination string           `json:"destination,omitempty"`
	CheckIn     string           `json:"checkIn,omitempty"`
	CheckOut    string           `json:"checkOut,omitempty"`
	Guests      types.FlexString `json:"guests,omitempty"`
	Rooms       types.FlexString `json:"rooms,omitempty"`
}

type CarSearchRequest struct {
	Location   string `json:"location,omitempty"`
	PickupDate string `json:"pickupDate,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"`
	CarType    string `json:"carType,omitempty"`
}

type RestaurantSearchRequest struct {
	Location   string `json:"location,omitempty"`
	Cuisine    string `json:"cuisine,omitempty"`
	PriceRange string `json:"priceRange,omitempty"`
	Date       string `json:"date,omitempty"`
}

var popularDestinations = []Destination{
	{ID: 1, Name: "Paris, France", Description: "City of Love and Lights"},
	{ID: 2, Name: "Tokyo, Japan", Description: "Modern metropolis with rich culture"},
	{ID: 3, Name: "New York, USA", Description: "The Big Apple"},
	{ID: 4, Name: "London, England", Description: "Historic and modern blend"},
	{ID: 5, Name: "Dubai, UAE", Description: "Luxury and innovation"},
	{ID: 6, Name: "Rome, Italy", Description: "Eternal City with ancient history"},
	{ID: 7, Name: "Bali, Indonesia", Description: "Tropical paradise"},
	{ID: 8, Name: "Sydney, Australia", Description: "Harbor city with iconic landmarks"},
}

var travelTips = []string{
	"Book flights in advance for better deals",
	"Pack light and bring versatile clothing",
	"Research local customs and etiquette",
	"Keep digital and physical copies of important documents",
	"Notify your bank about travel plans",
	"Download offline maps and translation apps",
	"Pack a universal power adapter",
	"Consider travel insurance",
}

func flightResults(from, to string) []Flight {
	return []Flight{
		{ID: 1, Airline: "Emirates", From: from, To: to, DepartTime: "08:00", ArriveTime: "20:30", Duration: "12h 30m", Price: 850, Stops: 0},
		{ID: 2, Airline: "British Airways", From: from, To: to, DepartTime: "14:15", ArriveTime: "09:45+1", Duration: "15h 30m", Price: 720, Stops: 1},
		{ID: 3, Airline: "Qatar Airways", From: from, To: to, DepartTime: "22:00", ArriveTime: "18:20+1", Duration: "14h 20m", Price: 890, Stops: 1},
	}
}

func hotelResults(location string) []Hotel {
	return []Hotel{
		{ID: 1, Name: "Grand Palace Hotel", Location: location, Rating: 5, Price: 250, Currency: "USD", Amenities: []string{"Wi-Fi", "Pool", "Gym", "Spa", "Restaurant"}, Image: "hotel1.jpg"},
		{ID: 2, Name: "City Center Inn", Location: location, Rating: 4, Price: 120, Currency: "USD", Amenities: []string{"Wi-Fi", "Breakfast", "Gym"}, Image: "hotel2.jpg"},
		{ID: 3, Name: "Luxury Resort & Spa", Location: location, Rating: 5, Price: 380, Currency: "USD", Amenities: []string{"Wi-Fi", "Pool", "Spa", "Beach Access", "All-Inclusive"}, Image: "hotel3.jpg"},
	}
}

func carResults(location string) []Car {
	return []Car{
		{ID: 1, Brand: "Toyota", Model: "Camry", Type: "Sedan", Location: location, PricePerDay: 45, Currency: "USD", Features: []string{"Automatic", "A/C", "GPS", "4 Doors", "5 Seats"}, Image: "car1.jpg"},
		{ID: 2, Brand: "Nissan", Model: "Altima", Type: "SUV", Location: location, PricePerDay: 65, Currency: "USD", Features: []string{"Automatic", "A/C", "GPS", "4WD", "7 Seats"}, Image: "car2.jpg"},
		{ID: 3, Brand: "BMW", Model: "3 Series", Type: "Luxury", Location: location, PricePerDay: 120, Currency: "USD", Features: []string{"Automatic", "A/C", "GPS", "Leather", "Premium Audio"}, Image: "car3.jpg"},
	}
}

func restaurantResults(location, cuisine string) []Restaurant {
	return []Restaurant{
		{ID: 1, Name: "The Golden Spoon", Cuisine: orDefault(cuisine, "International"), Location: location, Rating: 4.8, PriceRange: "$$$$", OpenHours: "6:00 PM - 11:00 PM", Specialties: []string{"Seafood", "Steaks", "Fine Dining"}, Image: "restaurant1.jpg"},
		{ID: 2, Name: "Street Food Paradise", Cuisine: orDefault(cuisine, "Local"), Location: location, Rating: 4.5, PriceRange: "$$", OpenHours: "11:00 AM - 10:00 PM", Specialties: []string{"Local Dishes", "Casual Dining", "Family Friendly"}, Image: "restaurant2.jpg"},
		{ID: 3, Name: "Rooftop Bistro", Cuisine: orDefault(cuisine, "Mediterranean"), Location: location, Rating: 4.7, PriceRange: "$$$", OpenHours: "5:00 PM - 12:00 AM", Specialties: []string{"Mediterranean", "City Views", "Cocktails"}, Image: "restaurant3.jpg"},
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
