// Copyright (c) 2026 Durafone. All rights reserved.

/*
Package siteconfig implements the admin-editable site configuration document.

The document is a nested structure (company info, hero copy, feature list,
featured products, call-to-action) that the storefront renders directly.
Admins edit individual fields through validated paths; saving always
overwrites the whole document under a single durable key.

# Architecture

  - Document: the raw nested structure, JSON-shaped.
  - Editor: validated field-path and list-item mutations (fails closed).
  - Store: single-key persistence, full-document overwrite, last writer wins.
*/
package siteconfig

// Document is the site-configuration tree as decoded JSON.
//
// Leaves are scalars (string/float64/bool); interior nodes are nested
// maps or lists of maps. There is no schema versioning: the document is
// small and replaced whole on every save.
type Document map[string]any

// Editable list names within the document.
const (
	ListFeatures         = "features"
	ListFeaturedProducts = "featuredProducts"
)

// Default returns the factory site configuration the storefront ships with.
//
// A fresh tree is built on every call so callers can mutate their copy freely.
func Default() Document {
	return Document{
		"company": map[string]any{
			"name":        "Durafone",
			"tagline":     "Smartphones que sobrevivem a tudo",
			"description": "Especialistas em smartphones robustos para trabalho pesado, trilha e aventura.",
			"contact": map[string]any{
				"phone":   "(11) 4002-8922",
				"email":   "contato@durafone.com.br",
				"address": "Av. Paulista, 1000 - São Paulo, SP",
			},
		},
		"hero": map[string]any{
			"badge":           "Novidade: linha 2026 disponível",
			"title":           "O smartphone que aguenta o seu dia a dia",
			"subtitle":        "Resistência militar, bateria para dias e garantia estendida.",
			"primaryButton":   "Ver produtos",
			"secondaryButton": "Compare modelos",
		},
		"features": []any{
			map[string]any{
				"icon":        "shield",
				"title":       "Certificação IP68",
				"description": "Resistente a água, poeira e quedas de até 2 metros.",
			},
			map[string]any{
				"icon":        "battery",
				"title":       "Bateria de 10.000mAh",
				"description": "Até 5 dias de uso longe da tomada.",
			},
			map[string]any{
				"icon":        "truck",
				"title":       "Entrega para todo o Brasil",
				"description": "Frete grátis acima de R$ 500 e envio em 24h.",
			},
		},
		"featuredProducts": []any{
			map[string]any{
				"name":     "Armor X12 Pro",
				"price":    2899.90,
				"oldPrice": 3299.90,
				"discount": 12.0,
				"image":    "/images/armor-x12-pro.jpg",
				"badge":    "Mais vendido",
			},
			map[string]any{
				"name":     "Titan Rugged 5G",
				"price":    3499.00,
				"oldPrice": 3899.00,
				"discount": 10.0,
				"image":    "/images/titan-rugged-5g.jpg",
				"badge":    "Lançamento",
			},
		},
		"cta": map[string]any{
			"title":      "Pronto para um telefone indestrutível?",
			"subtitle":   "Fale com nossos especialistas e escolha o modelo ideal.",
			"buttonText": "Falar com especialista",
		},
	}
}
