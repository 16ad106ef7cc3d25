package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// The seeder talks to the public API only, so it carries its own request
// types instead of importing the server's models.

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type vehicle struct {
	Registration string   `json:"registration"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Energy       string   `json:"energy"`
	V7Emissions  *float64 `json:"v7_emissions,omitempty"`
}

type trip struct {
	VehicleID          string   `json:"vehicle_id,omitempty"`
	TripDate           string   `json:"trip_date"`
	OriginAddress      string   `json:"origin_address"`
	DestinationAddress string   `json:"destination_address"`
	DistanceKm         *float64 `json:"distance_km"`
	CO2EmissionsKg     *float64 `json:"co2_emissions_kg,omitempty"`
	TransportMode      string   `json:"transport_mode"`
	Type               string   `json:"type_trajet"`
}

var addresses = []string{
	"12 rue de la République, Lyon",
	"4 place Bellecour, Lyon",
	"Gare Part-Dieu, Lyon",
	"28 avenue Jean Jaurès, Villeurbanne",
	"Campus de la Doua, Villeurbanne",
	"3 quai des Célestins, Lyon",
	"Aéroport Saint-Exupéry",
	"16 cours Lafayette, Lyon",
}

var carModels = []struct {
	brand, model string
	energy       string
	v7           float64
}{
	{"Renault", "Clio", "gasoline", 118},
	{"Peugeot", "208", "diesel", 104},
	{"Tesla", "Model 3", "electric", 0},
	{"Toyota", "Yaris", "hybrid", 87},
}

var authToken string

func post(url string, body interface{}) ([]byte, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	return data, resp.StatusCode, err
}

func registration() string {
	letters := "ABCDEFGHJKLMNPRSTVWXYZ"
	return fmt.Sprintf("%c%c-%03d-%c%c",
		letters[rand.Intn(len(letters))], letters[rand.Intn(len(letters))],
		rand.Intn(1000),
		letters[rand.Intn(len(letters))], letters[rand.Intn(len(letters))])
}

func randomTrip(vehicleID, tripType string, daysBack int) trip {
	origin := addresses[rand.Intn(len(addresses))]
	dest := addresses[rand.Intn(len(addresses))]
	for dest == origin {
		dest = addresses[rand.Intn(len(addresses))]
	}

	distance := 2 + rand.Float64()*48
	date := time.Now().AddDate(0, 0, -rand.Intn(daysBack))

	t := trip{
		TripDate:           date.Format(time.DateOnly),
		OriginAddress:      origin,
		DestinationAddress: dest,
		DistanceKm:         &distance,
		Type:               tripType,
	}
	if vehicleID != "" && rand.Float64() < 0.8 {
		t.VehicleID = vehicleID
		t.TransportMode = "car"
	} else {
		modes := []string{"train", "bike", "bus", "subway"}
		t.TransportMode = modes[rand.Intn(len(modes))]
		// Rough public-transport estimate so the cockpit has data.
		co2 := distance * 0.03
		t.CO2EmissionsKg = &co2
	}
	return t
}

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	tripCount := 60
	if v := os.Getenv("SEED_TRIPS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			tripCount = parsed
		}
	}

	email := fmt.Sprintf("demo+%d@carbyo.test", time.Now().Unix())
	password := "demo-password-123"

	if _, status, err := post(apiURL+"/api/auth/register", registerRequest{
		Email: email, Password: password, FirstName: "Demo", LastName: "User",
	}); err != nil || status != http.StatusCreated {
		log.WithError(err).WithField("status", status).Fatal("registration failed")
	}

	data, status, err := post(apiURL+"/api/auth/login", loginRequest{Email: email, Password: password})
	if err != nil || status != http.StatusOK {
		log.WithError(err).WithField("status", status).Fatal("login failed")
	}
	var login loginResponse
	if err := json.Unmarshal(data, &login); err != nil {
		log.WithError(err).Fatal("bad login response")
	}
	authToken = login.Token
	log.WithField("email", email).Info("demo user ready")

	var vehicleIDs []string
	for i := 0; i < 2; i++ {
		m := carModels[rand.Intn(len(carModels))]
		v := vehicle{
			Registration: registration(),
			Brand:        m.brand,
			Model:        m.model,
			Energy:       m.energy,
		}
		if m.v7 > 0 {
			v7 := m.v7
			v.V7Emissions = &v7
		}
		data, status, err := post(apiURL+"/api/vehicles", v)
		if err != nil || status != http.StatusCreated {
			log.WithError(err).WithField("status", status).Fatal("vehicle creation failed")
		}
		var created struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(data, &created); err != nil {
			log.WithError(err).Fatal("bad vehicle response")
		}
		vehicleIDs = append(vehicleIDs, created.ID)
		log.WithFields(log.Fields{"brand": m.brand, "model": m.model, "id": created.ID}).Info("vehicle created")
	}

	// Spread trips over ~3 months so the cockpit gets a previous-month
	// baseline and an all-time total that differ.
	created := 0
	for i := 0; i < tripCount; i++ {
		tripType := "perso"
		if rand.Float64() < 0.4 {
			tripType = "pro"
		}
		t := randomTrip(vehicleIDs[rand.Intn(len(vehicleIDs))], tripType, 90)
		if _, status, err := post(apiURL+"/api/trips", t); err != nil || status != http.StatusCreated {
			log.WithError(err).WithField("status", status).Warn("trip creation failed")
			continue
		}
		created++
	}

	log.WithFields(log.Fields{"trips": created, "vehicles": len(vehicleIDs)}).Info("seeding complete")
}
