// internal/services/registration_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dippchain/studio-api/internal/models"
	"github.com/dippchain/studio-api/internal/store"
	"github.com/dippchain/studio-api/internal/utils"
)

var ErrAlreadyRegistered = errors.New("ip already registered")

// TokenID accepts a JSON string or number. Normalize rewrites it into its
// canonical decimal form.
type TokenID string

func (t *TokenID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TokenID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("tokenId must be a string or a number")
	}
	*t = TokenID(n.String())
	return nil
}

func (t TokenID) String() string {
	return string(t)
}

type RegisterIPRequest struct {
	SourceContract string   `json:"sourceContract" validate:"required,evm_address"`
	TokenID        TokenID  `json:"tokenId" validate:"required,token_id"`
	WatermarkHash  string   `json:"watermarkHash" validate:"required"`
	ContentCIDs    []string `json:"contentCids" validate:"required,min=1,dive,required"`
	Title          string   `json:"title,omitempty" validate:"max=255"`
	Description    string   `json:"description,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Owner          string   `json:"owner,omitempty" validate:"omitempty,evm_address"`

	// Older dashboards send the source contract under this name.
	StoryNFTContract string `json:"storyNftContract,omitempty"`
}

// Normalize folds legacy field names and trims whitespace before validation.
func (r *RegisterIPRequest) Normalize() {
	if r.SourceContract == "" {
		r.SourceContract = r.StoryNFTContract
	}
	r.SourceContract = strings.TrimSpace(r.SourceContract)
	r.TokenID = TokenID(strings.TrimSpace(string(r.TokenID)))
	if canonical, err := utils.CanonicalTokenID(string(r.TokenID)); err == nil {
		r.TokenID = TokenID(canonical)
	}
	r.WatermarkHash = strings.TrimSpace(r.WatermarkHash)
	r.Owner = strings.TrimSpace(r.Owner)
}

type RegisterIPResponse struct {
	DippChainID    string `json:"dippChainId"`
	TxHash         string `json:"txHash"`
	SourceContract string `json:"sourceContract"`
	TokenID        string `json:"tokenId"`
}

type RegistrationService struct {
	registrar Registrar
	ips       store.Store[models.IPAsset]
	existing  *ResourceQuery[models.IPAsset]
}

func NewRegistrationService(registrar Registrar, ips store.Store[models.IPAsset]) *RegistrationService {
	return &RegistrationService{
		registrar: registrar,
		ips:       ips,
		existing:  NewResourceQuery(ips, ipsByChainID),
	}
}

// RegisterIP validates the request, registers it and stores the resulting IP
// record. A contract/token pair can only be registered once.
func (s *RegistrationService) RegisterIP(ctx context.Context, req *RegisterIPRequest) (*RegisterIPResponse, error) {
	req.Normalize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidInput, err)
	}

	dippChainID := utils.DeriveChainAssetID(req.SourceContract, req.TokenID.String())
	n, err := s.existing.Count(ctx, url.Values{"dippChainId": {dippChainID}})
	if err != nil {
		return nil, fmt.Errorf("check registration: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, dippChainID)
	}

	receipt, err := s.registrar.RegisterIP(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	asset := models.IPAsset{
		ID:               receipt.DippChainID,
		DippChainID:      receipt.DippChainID,
		Title:            req.Title,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		SourceContract:   req.SourceContract,
		SourceTokenID:    req.TokenID.String(),
		RegisteredBy:     req.Owner,
		RegisteredAt:     receipt.SubmittedAt,
		DetectionEnabled: true,
		WatermarkHash:    req.WatermarkHash,
		ContentCIDs:      models.StringList(req.ContentCIDs),
	}
	if asset.Title == "" {
		asset.Title = fmt.Sprintf("Token #%s", req.TokenID)
	}

	if err := s.ips.Create(ctx, asset); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, receipt.DippChainID)
		}
		return nil, fmt.Errorf("store ip: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"event":         "registration",
		"dipp_chain_id": asset.DippChainID,
		"tx_hash":       receipt.TxHash,
	}).Info("IP registered")

	return &RegisterIPResponse{
		DippChainID:    receipt.DippChainID,
		TxHash:         receipt.TxHash,
		SourceContract: req.SourceContract,
		TokenID:        req.TokenID.String(),
	}, nil
}
