package urlclean

import (
	"strings"
	"sync"
)

// Curated tracking parameter names, grouped by category. Names are
// matched case-insensitively; a name may appear in more than one
// category because platforms reuse generic names (ref, hash,
// share_source). Removal is set-based, so the overlap is harmless.
//
// Adding or removing names changes observable output for existing
// inputs, so edits to these lists are API changes and should be
// released as such.
var (
	analyticsParams = []string{
		// Google Analytics / Ads
		"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
		"utm_id", "utm_source_platform", "utm_creative_format", "utm_marketing_tactic",
		"gclid", "gclsrc", "gbraid", "wbraid", "dclid", "gad_source",
		"_ga", "_gl", "_gid", "ga_source", "ga_medium", "ga_campaign", "ga_term", "ga_content",
		// Microsoft / Bing
		"msclkid",
		// Yandex
		"yclid", "ysclid", "_openstat",
		// Adobe Analytics
		"s_cid", "s_kwcid", "ef_id", "cmpid",
		// Matomo / Piwik
		"pk_campaign", "pk_kwd", "pk_source", "pk_medium", "pk_content", "pk_cid",
		"mtm_campaign", "mtm_keyword", "mtm_source", "mtm_medium", "mtm_content",
		"mtm_cid", "mtm_group", "mtm_placement",
		// HubSpot ads
		"hsa_acc", "hsa_cam", "hsa_grp", "hsa_ad", "hsa_src", "hsa_tgt",
		"hsa_kw", "hsa_mt", "hsa_net", "hsa_ver",
		// Marin / Kenshoo / misc bid management
		"mkwid", "pcrid", "pgrid", "ptaid",
		// Webtrends / AT Internet
		"wt_mc", "wt_zmc", "xtor",
		// Generic attribution
		"campaign", "medium", "source", "click_id", "clickid", "irclickid", "irgwc",
		"rb_clickid", "vgo_ee", "twclid", "ttclid", "epik", "qclid", "sc_cid",
	}

	socialParams = []string{
		// Facebook / Meta
		"fbclid", "fb_action_ids", "fb_action_types", "fb_source", "fb_ref",
		"action_object_map", "action_type_map", "action_ref_map", "mibextid",
		// Instagram
		"igshid", "igsh",
		// Twitter / X
		"twclid", "ref_src", "ref_url",
		// TikTok
		"ttclid", "tt_medium", "tt_content", "is_from_webapp", "sender_device",
		// LinkedIn
		"li_fat_id", "trk", "trkcampaign", "licu",
		// Snapchat
		"sc_referrer", "sc_ua",
		// Reddit
		"rdt", "rdt_cid", "share_id",
		// Pinterest
		"epik",
		// WeChat / Weibo / Bilibili share plumbing
		"isappinstalled", "weibo_id", "share_source", "share_medium",
		"share_plat", "share_tag", "share_session_id", "share_app_id", "spm_id_from",
		"vd_source",
		// YouTube share
		"feature", "si", "embeds_referring_euri",
		// Generic share attribution
		"ref", "hash", "smid", "via",
	}

	emailParams = []string{
		// Mailchimp
		"mc_cid", "mc_eid",
		// Marketo
		"mkt_tok",
		// HubSpot email
		"_hsenc", "_hsmi", "hsctatracking",
		// Klaviyo
		"_ke", "_kx",
		// Drip
		"__s",
		// Vero
		"vero_conv", "vero_id",
		// Omeda
		"oly_anon_id", "oly_enc_id",
		// MailerLite
		"ml_subscriber", "ml_subscriber_hash",
		// dotdigital
		"dm_i", "dm_t",
		// Blueshift
		"bsft_clkid", "bsft_uid", "bsft_aaid", "bsft_eid", "bsft_mid", "bsft_txnid",
		// Eloqua
		"elqtrackid", "elq", "elqaid", "elqat", "elqcampaignid",
		// Salesforce / ExactTarget
		"sfmc_id", "sfmc_sub", "sfdc_id",
		// Customer.io / Iterable / generic
		"_cio_id", "itm_source", "itm_medium", "itm_campaign",
		"nr_email_referer", "cmail", "recipientid", "subscriberid",
	}

	ecommerceParams = []string{
		// Amazon
		"tag", "ascsubtag", "linkcode", "linkid", "creative", "creativeasin",
		"camp", "pf_rd_p", "pf_rd_r", "pf_rd_s", "pf_rd_t", "pf_rd_i", "pf_rd_m",
		"pd_rd_r", "pd_rd_w", "pd_rd_wg", "sr_ref",
		// AliExpress / Alibaba
		"spm", "scm", "pvid", "algo_pvid", "algo_expid", "btsid", "ws_ab_test",
		"gps-id", "aff_fcid", "aff_fsk", "aff_platform", "aff_trace_key",
		"terminal_id", "afsmartredirect",
		// eBay
		"mkcid", "mkevt", "mkrid", "campid", "toolid", "customid", "amdata",
		// Etsy
		"click_key", "click_sum", "organic_search_click_page", "ref",
		// Affiliate networks
		"cjevent", "cjdata", "zanpid", "awc", "sscid", "ranmid", "raneaid",
		"ransiteid", "irclickid", "clickref", "affid", "affiliate_id", "sub_aff_id",
		// Shopify / generic storefront attribution
		"sca_ref", "shpxid", "_pos", "_sid", "_ss",
	}

	otherParams = []string{
		// Publisher/newsletter referral tags
		"ref", "referrer", "src", "cmp", "mbid", "ncid", "ocid", "ito",
		"smid", "smtyp", "wpsrc", "wpisrc", "sr_share", "soc_src", "soc_trk",
		// Guardian / BBC style internal campaign codes
		"icid", "intcid", "int_source", "int_medium", "int_campaign",
		"ns_campaign", "ns_mchannel", "ns_source", "ns_linkname", "ns_fee",
		// Consent-wall redirect breadcrumbs
		"guce_referrer", "guce_referrer_sig", "guccounter",
		// Misc session/share noise
		"hash", "share_source", "via", "cvid",
		"refid", "ref_", "_trkparms", "_trksid", "nsukey", "srcid", "frommodule",
	}
)

var (
	dbOnce     sync.Once
	byCategory map[Category]map[string]bool
	allParams  map[string]bool
)

// initDatabase builds the per-category lookup sets and their union once.
// The maps are never mutated afterwards, so concurrent readers need no
// locking.
func initDatabase() {
	lists := map[Category][]string{
		CategoryAnalytics: analyticsParams,
		CategorySocial:    socialParams,
		CategoryEmail:     emailParams,
		CategoryEcommerce: ecommerceParams,
		CategoryOther:     otherParams,
	}

	byCategory = make(map[Category]map[string]bool, len(lists))
	allParams = make(map[string]bool, 256)

	for category, names := range lists {
		set := make(map[string]bool, len(names))
		for _, name := range names {
			lower := strings.ToLower(name)
			set[lower] = true
			allParams[lower] = true
		}
		byCategory[category] = set
	}
}

// database returns the shared read-only category sets.
func database() map[Category]map[string]bool {
	dbOnce.Do(initDatabase)
	return byCategory
}

// allDatabase returns the shared read-only union of every category.
func allDatabase() map[string]bool {
	dbOnce.Do(initDatabase)
	return allParams
}

// AllParameters returns the full set of known tracking parameter names,
// lowercased. The returned map is a copy and safe for the caller to extend.
func AllParameters() map[string]bool {
	return copySet(allDatabase())
}

// Parameters returns the union of the given categories' parameter sets,
// lowercased. An empty category list yields an empty set; passing every
// category yields the same contents as AllParameters.
func Parameters(categories ...Category) map[string]bool {
	db := database()

	union := make(map[string]bool)
	for _, category := range categories {
		for name := range db[category] {
			union[name] = true
		}
	}
	return union
}

func copySet(src map[string]bool) map[string]bool {
	dst := make(map[string]bool, len(src))
	for name := range src {
		dst[name] = true
	}
	return dst
}
