package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	config "github.com/postloom/postloom/configs"
	"github.com/postloom/postloom/internal/apperr"
	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/repository"
	"github.com/postloom/postloom/internal/transfer"
	"github.com/postloom/postloom/pkg/utils"
	"golang.org/x/oauth2"
)

var platformEndpoints = map[string]oauth2.Endpoint{
	models.PlatformTwitter: {
		AuthURL:  "https://twitter.com/i/oauth2/authorize",
		TokenURL: "https://api.twitter.com/2/oauth2/token",
	},
	models.PlatformFacebook: {
		AuthURL:  "https://www.facebook.com/v18.0/dialog/oauth",
		TokenURL: "https://graph.facebook.com/v18.0/oauth/access_token",
	},
	models.PlatformLinkedin: {
		AuthURL:  "https://www.linkedin.com/oauth/v2/authorization",
		TokenURL: "https://www.linkedin.com/oauth/v2/accessToken",
	},
	models.PlatformInstagram: {
		AuthURL:  "https://www.instagram.com/oauth/authorize",
		TokenURL: "https://api.instagram.com/oauth/access_token",
	},
	models.PlatformPinterest: {
		AuthURL:  "https://www.pinterest.com/oauth",
		TokenURL: "https://api.pinterest.com/v5/oauth/token",
	},
}

type IntegrationService interface {
	GetAuthURL(platform, state string) (string, error)
	Callback(ctx context.Context, userID int64, platform, code string) error
	List(ctx context.Context, userID int64) ([]*models.Integration, error)
	Remove(ctx context.Context, userID, integrationID int64) error
}

type integrationService struct {
	cfg config.Config
	ir  repository.IntegrationRepository
}

func NewIntegrationService(cfg config.Config, ir repository.IntegrationRepository) IntegrationService {
	return &integrationService{
		cfg: cfg,
		ir:  ir,
	}
}

func (s *integrationService) oauthConfig(platform string) (*oauth2.Config, error) {
	endpoint, ok := platformEndpoints[platform]
	if !ok {
		return nil, apperr.Validation("unsupported platform %s", platform)
	}

	creds := s.cfg.PlatformCredentials(platform)
	if creds.ClientID == "" || creds.ClientSecret == "" {
		err := fmt.Errorf("OAuth configuration for %s is incomplete", platform)
		slog.Info(err.Error())
		return nil, err
	}

	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  creds.RedirectURI,
		Scopes:       creds.Scopes,
		Endpoint:     endpoint,
	}, nil
}

func (s *integrationService) GetAuthURL(platform, state string) (string, error) {
	oauthCfg, err := s.oauthConfig(platform)
	if err != nil {
		return "", err
	}
	return oauthCfg.AuthCodeURL(state), nil
}

// Callback exchanges the authorization code, fetches the account's public
// profile and stores the integration with its tokens encrypted at rest.
func (s *integrationService) Callback(ctx context.Context, userID int64, platform, code string) error {
	if code == "" {
		err := errors.New("authorization code is empty")
		slog.Info(err.Error())
		return apperr.Validation("authorization code is empty")
	}

	oauthCfg, err := s.oauthConfig(platform)
	if err != nil {
		return err
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	profile, err := fetchPlatformProfile(oauthCfg.Client(ctx, token), platform)
	if err != nil {
		return err
	}

	accessToken, err := utils.Encrypt([]byte(token.AccessToken), []byte(s.cfg.TokenCipherKey))
	if err != nil {
		return err
	}
	refreshToken := ""
	if token.RefreshToken != "" {
		refreshToken, err = utils.Encrypt([]byte(token.RefreshToken), []byte(s.cfg.TokenCipherKey))
		if err != nil {
			return err
		}
	}

	existing, err := s.ir.GetByPlatformUserID(ctx, userID, platform, profile.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		expiry := token.Expiry
		return s.ir.SetToken(ctx, existing.ID, accessToken, refreshToken, &expiry)
	}

	expiry := token.Expiry
	integration := models.Integration{
		UserID:          userID,
		Platform:        platform,
		PlatformUserID:  profile.ID,
		Username:        profile.Username,
		DisplayName:     profile.Name,
		ProfileImageURL: profile.ProfileImageURL,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		TokenExpiry:     &expiry,
	}
	if _, err := s.ir.Create(ctx, nil, &integration); err != nil {
		return err
	}
	return nil
}

func (s *integrationService) List(ctx context.Context, userID int64) ([]*models.Integration, error) {
	integrations, err := s.ir.ListInfoByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing integrations: %w", err)
	}
	return integrations, nil
}

func (s *integrationService) Remove(ctx context.Context, userID, integrationID int64) error {
	exists, err := s.ir.CheckByUserID(ctx, integrationID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrNotFound
	}
	return s.ir.Remove(ctx, integrationID)
}

var platformProfileURLs = map[string]string{
	models.PlatformTwitter:   "https://api.twitter.com/2/users/me?user.fields=profile_image_url",
	models.PlatformFacebook:  "https://graph.facebook.com/me?fields=id,name,picture",
	models.PlatformLinkedin:  "https://api.linkedin.com/v2/userinfo",
	models.PlatformInstagram: "https://graph.instagram.com/me?fields=id,username",
	models.PlatformPinterest: "https://api.pinterest.com/v5/user_account",
}

func fetchPlatformProfile(client *http.Client, platform string) (*transfer.PlatformUserInfo, error) {
	resp, err := client.Get(platformProfileURLs[platform])
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("%s profile request returned status %d", platform, resp.StatusCode)
		slog.Info(err.Error())
		return nil, err
	}

	switch platform {
	case models.PlatformTwitter:
		var body struct {
			Data struct {
				ID              string `json:"id"`
				Username        string `json:"username"`
				Name            string `json:"name"`
				ProfileImageURL string `json:"profile_image_url"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, err
		}
		return &transfer.PlatformUserInfo{
			ID:              body.Data.ID,
			Username:        body.Data.Username,
			Name:            body.Data.Name,
			ProfileImageURL: body.Data.ProfileImageURL,
		}, nil

	case models.PlatformFacebook:
		var body struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Picture struct {
				Data struct {
					URL string `json:"url"`
				} `json:"data"`
			} `json:"picture"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, err
		}
		return &transfer.PlatformUserInfo{
			ID:              body.ID,
			Username:        body.Name,
			Name:            body.Name,
			ProfileImageURL: body.Picture.Data.URL,
		}, nil

	case models.PlatformLinkedin:
		var body struct {
			Sub     string `json:"sub"`
			Name    string `json:"name"`
			Picture string `json:"picture"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, err
		}
		return &transfer.PlatformUserInfo{
			ID:              body.Sub,
			Username:        body.Name,
			Name:            body.Name,
			ProfileImageURL: body.Picture,
		}, nil

	case models.PlatformInstagram:
		var body struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, err
		}
		return &transfer.PlatformUserInfo{
			ID:       body.ID,
			Username: body.Username,
			Name:     body.Username,
		}, nil

	case models.PlatformPinterest:
		var body struct {
			Username     string `json:"username"`
			ProfileImage string `json:"profile_image"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, err
		}
		return &transfer.PlatformUserInfo{
			ID:              body.Username,
			Username:        body.Username,
			Name:            body.Username,
			ProfileImageURL: body.ProfileImage,
		}, nil
	}

	return nil, fmt.Errorf("unsupported platform %s", platform)
}
