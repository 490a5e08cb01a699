package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"pesquisa_precos/internal/domain/entities"
	"pesquisa_precos/internal/usecase/interfaces"
)

var ErrMissingPortalBaseURL = errors.New("missing PORTAL_BASE_URL")
var ErrPortalGatewayNotConfigured = errors.New("portal gateway not configured")

// PortalGateway talks to the public procurement price portal over HTTP. It
// also serves the UF and municipality reference data published by the portal.
//
// Mock mode (PORTAL_GATEWAY_MOCK / PORTAL_MOCK) answers locally with canned
// data so the API runs without network access to the portal.

type PortalGateway struct {
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IPriceRecordGateway = (*PortalGateway)(nil)

func NewPortalGateway(baseURL string) (*PortalGateway, error) {
	if isPortalGatewayMockEnabled() {
		log.Printf("[search][gateway] mock mode enabled")
		return &PortalGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[search][gateway] missing PORTAL_BASE_URL")
		return nil, ErrMissingPortalBaseURL
	}

	log.Printf("[search][gateway] portal client initialized base_url=%s", baseURL)
	return &PortalGateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type searchResponse struct {
	Records []entities.PriceRecord `json:"records"`
	Total   int                    `json:"total"`
}

func (g *PortalGateway) SearchPriceRecords(ctx context.Context, q interfaces.SearchQuery) ([]entities.PriceRecord, int, error) {
	if g != nil && g.mockMode {
		records := mockRecords(q.Term, q.UF, q.Municipality)
		log.Printf("[search][gateway] mock search term=%q records=%d", q.Term, len(records))
		return records, len(records), nil
	}
	if g == nil || g.httpClient == nil {
		return nil, 0, ErrPortalGatewayNotConfigured
	}

	params := url.Values{}
	params.Set("termo", q.Term)
	params.Set("pagina", strconv.Itoa(q.Page))
	params.Set("tamanho_pagina", strconv.Itoa(q.PageSize))
	if q.UF != "" {
		params.Set("uf", q.UF)
	}
	if q.Municipality != "" {
		params.Set("municipio", q.Municipality)
	}

	var resp searchResponse
	if err := g.getJSON(ctx, "/api/precos?"+params.Encode(), &resp); err != nil {
		log.Printf("[search][gateway] search failed term=%q err=%v", q.Term, err)
		return nil, 0, err
	}
	log.Printf("[search][gateway] search success term=%q records=%d total=%d", q.Term, len(resp.Records), resp.Total)
	return resp.Records, resp.Total, nil
}

func (g *PortalGateway) FetchUFs(ctx context.Context) ([]entities.UF, error) {
	if g != nil && g.mockMode {
		return mockUFs(), nil
	}
	if g == nil || g.httpClient == nil {
		return nil, ErrPortalGatewayNotConfigured
	}

	var ufs []entities.UF
	if err := g.getJSON(ctx, "/api/ufs", &ufs); err != nil {
		log.Printf("[search][gateway] fetch ufs failed err=%v", err)
		return nil, err
	}
	return ufs, nil
}

func (g *PortalGateway) FetchMunicipalities(ctx context.Context, uf string) ([]entities.Municipality, error) {
	if g != nil && g.mockMode {
		return mockMunicipalities(uf), nil
	}
	if g == nil || g.httpClient == nil {
		return nil, ErrPortalGatewayNotConfigured
	}

	var municipalities []entities.Municipality
	if err := g.getJSON(ctx, "/api/municipios?uf="+url.QueryEscape(uf), &municipalities); err != nil {
		log.Printf("[search][gateway] fetch municipalities failed uf=%s err=%v", uf, err)
		return nil, err
	}
	return municipalities, nil
}

func (g *PortalGateway) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("portal returned status %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func isPortalGatewayMockEnabled() bool {
	for _, key := range []string{"PORTAL_GATEWAY_MOCK", "PORTAL_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func mockRecords(term, uf, municipality string) []entities.PriceRecord {
	if uf == "" {
		uf = "SP"
	}
	if municipality == "" {
		municipality = "São Paulo"
	}
	f := func(v float64) *float64 { return &v }
	today := time.Now().UTC().Format("2006-01-02")
	return []entities.PriceRecord{
		{
			ExternalID:    "mock-1",
			Description:   term + " (registro de ata)",
			Unit:          "unidade",
			UnitValue:     f(98.50),
			EntityName:    "Prefeitura Municipal",
			Municipality:  municipality,
			UF:            uf,
			ReferenceDate: today,
			DistanceKM:    f(12),
			Origin:        entities.SourceOriginGovernmentalRecord,
		},
		{
			ExternalID:    "mock-2",
			Description:   term + " (pregão eletrônico)",
			Unit:          "unidade",
			UnitValue:     f(104.90),
			EntityName:    "Secretaria Estadual de Administração",
			Municipality:  municipality,
			UF:            uf,
			ReferenceDate: today,
			DistanceKM:    f(48),
			Origin:        entities.SourceOriginGovernmentalRecord,
		},
		{
			ExternalID:    "mock-3",
			Description:   term + " (cotação direta)",
			Unit:          "caixa",
			UnitValue:     f(89.00),
			EntityName:    "Fornecedor Local LTDA",
			Municipality:  municipality,
			UF:            uf,
			ReferenceDate: today,
			Origin:        entities.SourceOriginDirectQuote,
		},
	}
}

func mockUFs() []entities.UF {
	return []entities.UF{
		{Sigla: "MG", Nome: "Minas Gerais"},
		{Sigla: "RJ", Nome: "Rio de Janeiro"},
		{Sigla: "SP", Nome: "São Paulo"},
	}
}

func mockMunicipalities(uf string) []entities.Municipality {
	switch strings.ToUpper(uf) {
	case "RJ":
		return []entities.Municipality{
			{ID: "3303302", Nome: "Niterói", UF: "RJ"},
			{ID: "3304557", Nome: "Rio de Janeiro", UF: "RJ"},
		}
	case "MG":
		return []entities.Municipality{
			{ID: "3106200", Nome: "Belo Horizonte", UF: "MG"},
			{ID: "3170206", Nome: "Uberlândia", UF: "MG"},
		}
	default:
		return []entities.Municipality{
			{ID: "3509502", Nome: "Campinas", UF: "SP"},
			{ID: "3550308", Nome: "São Paulo", UF: "SP"},
		}
	}
}
