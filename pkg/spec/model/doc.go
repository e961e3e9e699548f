// Package model defines the typed document model of a marketing
// specification.
//
// A Document has exactly one Project and ordered collections of Products,
// MarketingPlans, Campaigns, Channels, Tools, ContentTemplates, Milestones
// and Analytics reports. Entities reference each other by string ID rather
// than by containment:
//
//	Campaign.PlanID        -> MarketingPlan.ID  (mandatory)
//	Campaign.ProductIDs    -> Product.ID
//	Campaign.Channels      -> Channel.ID
//	Channel.ToolID         -> Tool.ID
//	Tool.ChannelIDs        -> Channel.ID
//	Milestone.ProductIDs   -> Product.ID
//	Milestone.CampaignIDs  -> Campaign.ID
//	Analytics.EntityID     -> Campaign.ID or MarketingPlan.ID (by Analytics.Type)
//
// # Shape Contract
//
// Struct tags carry three things: the document field name (yaml and json
// tags, always snake_case) and the shape constraints in go-playground
// validator syntax (validate tag). The parser enforces the validate tags
// before a Document is handed to the validation engine, so the engine can
// assume required fields are present, enumerations hold known values and
// IDs match ^[a-z0-9-]+$.
//
// Two enumerations are deliberately open at the shape layer: ToolType and
// the free-form status strings. An unrecognised ToolType survives parsing
// and is reported by the engine instead.
package model
