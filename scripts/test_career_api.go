package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

var baseURL = envOr("API_BASE_URL", "http://localhost:3000/api")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, map[string]interface{}, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 90 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	var decoded map[string]interface{}
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded, nil
}

func mustStep(title, method, url, token string, body interface{}) map[string]interface{} {
	color.Yellow("\n%s", title)
	resp, decoded, err := sendRequest(method, url, token, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}
	prettyPrint(decoded)
	return decoded
}

func main() {
	color.Cyan("🚀 Starting Career API Smoke Test\n")

	email := fmt.Sprintf("smoke+%d@example.com", time.Now().Unix())

	// 1. Signup
	signup := mustStep("[AUTH] 1. Signup", "POST", "/auth/signup", "", map[string]interface{}{
		"full_name":        "Smoke Tester",
		"email":            email,
		"password":         "password123",
		"confirm_password": "password123",
		"career_goal":      "first-job",
		"experience_level": "entry",
	})

	var token string
	if data, ok := signup["data"].(map[string]interface{}); ok {
		if session, ok := data["session"].(map[string]interface{}); ok {
			token, _ = session["access_token"].(string)
		}
	}
	if token == "" {
		color.Red("No access token in signup response")
		os.Exit(1)
	}

	// 2. Profile
	mustStep("[USER] 2. Get Profile", "GET", "/users/profile", token, nil)

	// 3. Dashboard
	mustStep("[DASHBOARD] 3. Get Stats", "GET", "/dashboard/stats", token, nil)
	mustStep("[DASHBOARD] 3a. Learning Progress", "GET", "/learning", token, nil)

	// 4. Chat (server-side context)
	mustStep("[AI] 4. Chat", "POST", "/ai/chat", token, map[string]interface{}{
		"message": "What should I learn next?",
	})

	// 5. Logout
	mustStep("[AUTH] 5. Logout", "POST", "/auth/logout", token, nil)

	color.Cyan("\n✅ Smoke test finished")
}
