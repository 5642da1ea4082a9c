package config

import "os"

type R2 struct {
	AccountID     string
	AccessKey     string
	SecretKey     string
	BucketName    string
	PublicBaseURL string
}

type OAuthClient struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
}

type Config struct {
	PostgresURI        string
	RedisURI           string
	FrontendURL        string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	Twitter            OAuthClient
	Facebook           OAuthClient
	Linkedin           OAuthClient
	Instagram          OAuthClient
	Pinterest          OAuthClient
	R2                 R2
	SecretKey          string
	TokenCipherKey     string
	CookieName         string
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI:        getEnv("POSTGRES_URI", ""),
		RedisURI:           getEnv("REDIS_URI", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", ""),
		Twitter:            loadOAuthClient("TWITTER", []string{"tweet.read", "tweet.write", "users.read", "offline.access"}),
		Facebook:           loadOAuthClient("FACEBOOK", []string{"public_profile", "pages_manage_posts"}),
		Linkedin:           loadOAuthClient("LINKEDIN", []string{"openid", "profile", "w_member_social"}),
		Instagram:          loadOAuthClient("INSTAGRAM", []string{"instagram_business_basic", "instagram_business_content_publish"}),
		Pinterest:          loadOAuthClient("PINTEREST", []string{"user_accounts:read", "pins:read", "pins:write"}),
		R2: R2{
			AccountID:     getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:     getEnv("R2_ACCESS_KEY", ""),
			SecretKey:     getEnv("R2_SECRET_KEY", ""),
			BucketName:    getEnv("R2_BUCKET_NAME", ""),
			PublicBaseURL: getEnv("R2_PUBLIC_BASE_URL", ""),
		},
		SecretKey:      getEnv("SECRET_KEY", ""),
		TokenCipherKey: getEnv("TOKEN_CIPHER_KEY", ""),
		CookieName:     getEnv("COOKIE_NAME", "postloom_session"),
	}
}

// PlatformCredentials returns the OAuth client for a platform name; unknown
// platforms get an empty client.
func (c *Config) PlatformCredentials(platform string) OAuthClient {
	switch platform {
	case "twitter":
		return c.Twitter
	case "facebook":
		return c.Facebook
	case "linkedin":
		return c.Linkedin
	case "instagram":
		return c.Instagram
	case "pinterest":
		return c.Pinterest
	}
	return OAuthClient{}
}

func loadOAuthClient(prefix string, scopes []string) OAuthClient {
	return OAuthClient{
		ClientID:     getEnv(prefix+"_CLIENT_ID", ""),
		ClientSecret: getEnv(prefix+"_CLIENT_SECRET", ""),
		RedirectURI:  getEnv(prefix+"_REDIRECT_URI", ""),
		Scopes:       scopes,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
