package crawler

import (
	"context"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abderrahmane-Najib/KG-project/internal/extract"
	"github.com/Abderrahmane-Najib/KG-project/internal/metrics"
	"github.com/Abderrahmane-Najib/KG-project/internal/sink"
)

// none is the placeholder the downstream loader expects in columns this
// data provider does not populate.
const none = "None"

// Orchestrator walks leagues, teams, and players sequentially, skipping
// work the state store already recorded and emitting sink rows for every
// extracted entity and relationship.
type Orchestrator struct {
	fetch            Fetcher
	teams            ProcessedSet
	players          ProcessedSet
	rows             RowWriter
	logger           *zap.Logger
	oneTeamPerLeague bool
	runID            string
}

// NewOrchestrator wires the pipeline together. oneTeamPerLeague limits
// each league to its first team, for smoke-test runs. An empty runID is
// replaced with a fresh one.
func NewOrchestrator(
	fetch Fetcher,
	teams ProcessedSet,
	players ProcessedSet,
	rows RowWriter,
	oneTeamPerLeague bool,
	runID string,
	logger *zap.Logger,
) *Orchestrator {
	if runID == "" {
		runID = uuid.NewString()
	}
	return &Orchestrator{
		fetch:            fetch,
		teams:            teams,
		players:          players,
		rows:             rows,
		logger:           logger,
		oneTeamPerLeague: oneTeamPerLeague,
		runID:            runID,
	}
}

// RunID identifies this invocation in logs and snapshot paths.
func (o *Orchestrator) RunID() string {
	return o.runID
}

// Run processes every configured league. It returns an error only for
// unrecoverable conditions (no leagues, context canceled); everything
// else degrades to partial or missing data and is logged.
func (o *Orchestrator) Run(ctx context.Context, leagues []League) error {
	if len(leagues) == 0 {
		return errors.New("no leagues configured")
	}
	o.logger.Info("crawl starting",
		zap.String("run_id", o.runID),
		zap.Int("leagues", len(leagues)),
	)
	for _, league := range leagues {
		if err := ctx.Err(); err != nil {
			return err
		}
		o.processLeague(ctx, league)
	}
	return ctx.Err()
}

func (o *Orchestrator) processLeague(ctx context.Context, league League) {
	log := o.logger.With(zap.String("league", league.Name))
	log.Info("processing league", zap.String("country", league.Country))

	o.append(sink.Leagues, extract.CleanString(league.ID), extract.CleanString(league.Name), none, none)
	o.append(sink.LeagueLocatedIn, extract.CleanString(league.ID), extract.CleanString(league.Country))
	o.append(sink.Countries, extract.CleanString(league.Country))

	doc, err := o.fetch.Fetch(ctx, league.Path)
	if err != nil {
		log.Warn("league page unavailable, skipping", zap.Error(err))
		return
	}
	teams := extract.TeamLinks(doc)
	if len(teams) == 0 {
		log.Warn("no teams found on standings page")
		return
	}
	if o.oneTeamPerLeague {
		teams = teams[:1]
	}
	for _, team := range teams {
		if ctx.Err() != nil {
			return
		}
		o.processTeam(ctx, league, team)
	}
}

func (o *Orchestrator) processTeam(ctx context.Context, league League, team extract.TeamLink) {
	log := o.logger.With(zap.String("team", team.Name), zap.String("team_id", team.ID))
	if o.teams.Contains(team.ID) {
		log.Info("skipping processed team")
		return
	}
	log.Info("processing team")

	o.append(sink.Teams, team.ID, extract.CleanString(team.Name), extract.CleanString(league.Name))
	o.append(sink.TeamParticipatesIn, team.ID, league.ID)
	o.append(sink.TeamBasedIn, team.ID, extract.CleanString(league.Country))

	doc, err := o.fetch.Fetch(ctx, team.Path)
	if err != nil {
		log.Warn("team page unavailable", zap.Error(err))
	} else {
		o.processManager(ctx, team, doc, log)
		for _, player := range extract.PlayerLinks(doc) {
			if ctx.Err() != nil {
				return
			}
			o.processPlayer(ctx, team.ID, player)
		}
	}

	if ctx.Err() != nil {
		return
	}
	if err := o.teams.Add(ctx, team.ID); err != nil {
		log.Error("failed to mark team processed", zap.Error(err))
		return
	}
	metrics.EntityProcessed("team")
}

// processManager finds the team's manager on the main page, falling back
// to the staff listing, and fetches the manager profile for details.
func (o *Orchestrator) processManager(ctx context.Context, team extract.TeamLink, doc *goquery.Document, log *zap.Logger) {
	manager, ok := extract.ManagerFromTeamPage(doc)
	if !ok {
		log.Info("manager not on main page, checking staff page")
		staffPath := strings.Replace(team.Path, "/startseite/", "/mitarbeiter/", 1)
		staffDoc, err := o.fetch.Fetch(ctx, staffPath)
		if err != nil {
			log.Warn("staff page unavailable", zap.Error(err))
			return
		}
		manager, ok = extract.ManagerFromStaffPage(staffDoc)
	}
	if !ok {
		log.Warn("manager not found")
		metrics.ExtractionFailure("manager")
		return
	}

	var age, nationality string
	if profileDoc, err := o.fetch.Fetch(ctx, manager.Path); err != nil {
		log.Warn("manager profile unavailable", zap.String("manager", manager.Name), zap.Error(err))
	} else {
		age, nationality = extract.ManagerDetails(profileDoc)
	}
	log.Info("manager found", zap.String("manager", manager.Name))

	o.append(sink.Managers, manager.ID, extract.CleanString(manager.Name), extract.CleanValue(age), extract.CleanString(nationality))
	o.append(sink.TeamManagedBy, team.ID, manager.ID)
	o.append(sink.ManagerManages, manager.ID, team.ID)
	if nationality != "" {
		o.append(sink.Countries, extract.CleanString(nationality))
		o.append(sink.ManagerBelongsTo, manager.ID, extract.CleanString(nationality))
	}
}

// processPlayer runs the per-player extraction family: profile, season
// totals, contract, achievements, injuries. Each field group is isolated;
// a missing group degrades to partial data for that player and never
// blocks the others. The player is marked processed only after every
// group had its chance.
func (o *Orchestrator) processPlayer(ctx context.Context, teamID string, player extract.PlayerLink) {
	log := o.logger.With(zap.String("player_id", player.ID))
	if o.players.Contains(player.ID) {
		return
	}

	doc, err := o.fetch.Fetch(ctx, player.Path)
	if err != nil {
		log.Warn("player profile unavailable, skipping", zap.Error(err))
		return
	}

	profile := extract.PlayerProfile(doc)
	log.Info("processing player", zap.String("name", profile.Name))
	o.emitProfile(teamID, player.ID, profile)
	o.emitTotals(ctx, player, profile.Positions, log)
	o.emitContract(teamID, player.ID, doc, profile.MarketValue, log)
	o.emitAchievements(ctx, player, log)
	o.emitInjuries(ctx, player, log)

	if ctx.Err() != nil {
		return
	}
	if err := o.players.Add(ctx, player.ID); err != nil {
		log.Error("failed to mark player processed", zap.Error(err))
		return
	}
	metrics.EntityProcessed("player")
}

func (o *Orchestrator) emitProfile(teamID, playerID string, p extract.Profile) {
	o.append(sink.Players,
		playerID,
		extract.CleanString(p.Name),
		extract.CleanValue(p.Age),
		extract.CleanString(p.Nationality),
		none,
		extract.CleanValue(p.Height),
		none,
		extract.CleanString(p.Foot),
		extract.CleanString(p.Positions),
		extract.CleanString(p.MarketValue),
		none,
		none,
		teamID,
	)
	o.append(sink.PlayerPlaysFor, playerID, teamID)
	if p.Nationality != "" {
		o.append(sink.Countries, extract.CleanString(p.Nationality))
		o.append(sink.PlayerPlaysForCountry, playerID, extract.CleanString(p.Nationality))
	}
}

func (o *Orchestrator) emitTotals(ctx context.Context, player extract.PlayerLink, positions string, log *zap.Logger) {
	statsPath := strings.Replace(player.Path, "/profil/", "/leistungsdaten/", 1) + "/plus/1?saison=ges"
	doc, err := o.fetch.Fetch(ctx, statsPath)
	if err != nil {
		log.Warn("stats page unavailable", zap.Error(err))
		metrics.ExtractionFailure("stats")
		return
	}
	role := extract.ClassifyRole(positions)
	totals, ok := extract.Totals(doc, role)
	if !ok {
		log.Warn("no season totals row")
		metrics.ExtractionFailure("stats")
		return
	}
	statID := extract.CleanString(player.ID + "_Total")
	o.append(sink.Stats, statID,
		totals.Matches, totals.Goals, totals.Assists,
		totals.Yellow, totals.SecondYellow, totals.Red,
		totals.GoalsConceded, totals.CleanSheets,
		none, none, none, none, none,
	)
	o.append(sink.PlayerHasStats, player.ID, statID)
	o.append(sink.StatsForPlayer, statID, player.ID)
}

func (o *Orchestrator) emitContract(teamID, playerID string, doc *goquery.Document, marketValue string, log *zap.Logger) {
	terms := extract.Contract(doc)
	if terms.Empty() {
		log.Debug("no contract block")
		metrics.ExtractionFailure("contract")
		return
	}
	contractID := extract.CleanString(playerID + "_Current")
	o.append(sink.Contracts, contractID,
		extract.CleanString(terms.Joined),
		extract.CleanString(terms.Expires),
		extract.CleanString(marketValue),
		none,
	)
	o.append(sink.PlayerHasContract, playerID, contractID)
	o.append(sink.ContractAssociated, contractID, playerID, "Player")
	o.append(sink.ContractFromTeam, contractID, teamID)
}

func (o *Orchestrator) emitAchievements(ctx context.Context, player extract.PlayerLink, log *zap.Logger) {
	honoursPath := strings.Replace(player.Path, "/profil/", "/erfolge/", 1)
	doc, err := o.fetch.Fetch(ctx, honoursPath)
	if err != nil {
		log.Debug("achievements page unavailable", zap.Error(err))
		metrics.ExtractionFailure("achievements")
		return
	}
	for _, a := range extract.Achievements(doc) {
		id := extract.CleanString(extract.AchievementID(player.ID, a.Title, a.Year))
		o.append(sink.Achievements, id,
			extract.CleanString(a.Title),
			extract.CleanString(a.Year),
			extract.CleanString(a.Title),
			none,
		)
		o.append(sink.PlayerHasAchievement, player.ID, id)
		o.append(sink.AchievementWonBy, id, player.ID, "Player")
	}
}

func (o *Orchestrator) emitInjuries(ctx context.Context, player extract.PlayerLink, log *zap.Logger) {
	injuriesPath := strings.Replace(player.Path, "/profil/", "/verletzungen/", 1)
	doc, err := o.fetch.Fetch(ctx, injuriesPath)
	if err != nil {
		log.Debug("injuries page unavailable", zap.Error(err))
		metrics.ExtractionFailure("injuries")
		return
	}
	for _, inj := range extract.Injuries(doc) {
		id := extract.CleanString(player.ID + "_" + inj.Start)
		o.append(sink.Injuries, id,
			extract.CleanString(inj.Type),
			extract.CleanString(inj.Start),
			extract.CleanString(inj.End),
			none,
			none,
		)
		o.append(sink.PlayerHasInjury, player.ID, id)
		o.append(sink.InjuryAffected, id, player.ID)
	}
}

// append logs write failures instead of aborting the crawl; sink
// writability is validated at startup, so failures here are exceptional.
func (o *Orchestrator) append(sinkName string, fields ...string) {
	if err := o.rows.Append(sinkName, fields...); err != nil {
		o.logger.Error("row append failed", zap.String("sink", sinkName), zap.Error(err))
	}
}
