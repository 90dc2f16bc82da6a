// Package sink writes denormalized rows to append-only CSV tables, one
// per entity or relationship kind. Header names, column order, and id
// formats are a binding contract with the downstream graph loader.
package sink

// Kind separates entity tables from relationship tables; they live in
// different output directories.
type Kind int

// Table kinds.
const (
	Node Kind = iota
	Relationship
)

// Table declares one sink and its fixed header contract.
type Table struct {
	Name   string
	Kind   Kind
	Header string
}

// Entity sink names.
const (
	Players      = "players"
	Teams        = "teams"
	Managers     = "managers"
	Leagues      = "leagues"
	Countries    = "countries"
	Contracts    = "contracts"
	Stats        = "stats"
	Achievements = "achievements"
	Injuries     = "injuries"
)

// Relationship sink names.
const (
	PlayerPlaysFor        = "player_plays_for"
	TeamParticipatesIn    = "team_participates_in"
	TeamBasedIn           = "team_based_in"
	TeamManagedBy         = "team_managed_by"
	ManagerBelongsTo      = "manager_belongs_to"
	ManagerManages        = "manager_manages"
	ManagerHasAchievement = "manager_has_achievement"
	PlayerPlaysForCountry = "player_plays_for_country"
	PlayerHasStats        = "player_has_stats"
	StatsForPlayer        = "stats_for_player"
	PlayerHasAchievement  = "player_has_achievement"
	PlayerHasInjury       = "player_has_injury"
	InjuryAffected        = "injury_affected"
	PlayerHasContract     = "player_has_contract"
	ContractAssociated    = "contract_associated_with"
	ContractFromTeam      = "contract_from_team"
	ContractToTeam        = "contract_to_team"
	LeagueLocatedIn       = "league_located_in"
	AchievementWonBy      = "achievement_won_by"
	ManagerCareerHistory  = "manager_career_history"
)

// Tables lists every sink the pipeline initializes. Some relationship
// tables are declared for the loader but only populated by other data
// providers; their headers still ship so the loader sees a stable set.
var Tables = []Table{
	{Players, Node, "id,name,age,nationality,jerseyNumber,height,weight,preferred_foot,preferred_positions,market_value,overall_rating,minutes_played,current_club_id"},
	{Teams, Node, "id,name,league_name"},
	{Managers, Node, "id,name,age,nationality"},
	{Leagues, Node, "id,name,tier,fifa_ranking"},
	{Countries, Node, "name"},
	{Contracts, Node, "id,joined_date,expires_date,market_value,salary"},
	{Stats, Node, "id,total_matches,total_goals,total_assists,total_yellow,total_second_yellow,total_red,goals_conceded,clean_sheets,win_rate,possession,passing_accuracy,shots_per_game,rating"},
	{Achievements, Node, "id,title,year,competition,level"},
	{Injuries, Node, "id,type,start_date,end_date,severity,description"},

	{PlayerPlaysFor, Relationship, "player_id,team_id"},
	{TeamParticipatesIn, Relationship, "team_id,league_id"},
	{TeamBasedIn, Relationship, "team_id,country_name"},
	{TeamManagedBy, Relationship, "team_id,manager_id"},
	{ManagerBelongsTo, Relationship, "manager_id,country_name"},
	{ManagerManages, Relationship, "manager_id,team_id"},
	{ManagerHasAchievement, Relationship, "manager_id,ach_id"},
	{PlayerPlaysForCountry, Relationship, "player_id,country_name"},
	{PlayerHasStats, Relationship, "player_id,stat_id"},
	{StatsForPlayer, Relationship, "stat_id,player_id"},
	{PlayerHasAchievement, Relationship, "player_id,ach_id"},
	{PlayerHasInjury, Relationship, "player_id,inj_id"},
	{InjuryAffected, Relationship, "inj_id,player_id"},
	{PlayerHasContract, Relationship, "player_id,cont_id"},
	{ContractAssociated, Relationship, "cont_id,associated_id,type"},
	{ContractFromTeam, Relationship, "cont_id,team_id"},
	{ContractToTeam, Relationship, "cont_id,team_id"},
	{LeagueLocatedIn, Relationship, "league_id,country_name"},
	{AchievementWonBy, Relationship, "ach_id,winner_id,type"},
	{ManagerCareerHistory, Relationship, "manager_id,team_id,team_name,start_date,end_date"},
}
