package system

import (
	"github.com/younwookim/boxkick/internal/domain/entity"
	"github.com/younwookim/boxkick/internal/infrastructure/config"
)

// CheckCollision finds the first active obstacle in store order that blocks
// the player in the given facing. The probe point sits a fraction of the
// sprite width in from the left edge, further in when facing right, and the
// obstacle's vertical band is shifted down by the sprite anchor offset.
// Returns (false, -1) when nothing blocks.
func CheckCollision(obstacles []*entity.Obstacle, p *entity.Player, facingLeft bool, cfg config.CollisionConfig) (bool, int) {
	px := p.X + cfg.SpriteWidth/cfg.RightDivisor
	if facingLeft {
		px = p.X + cfg.SpriteWidth/cfg.LeftDivisor
	}

	for i, o := range obstacles {
		if !o.Active {
			continue
		}
		if px <= o.XLeft || px >= o.XRight {
			continue
		}
		if p.Y >= o.YTop+cfg.VerticalOffset && p.Y <= o.YBottom+cfg.VerticalOffset {
			return true, i
		}
	}
	return false, -1
}

// LandingOverlap tests horizontal overlap between the padded player hitbox and
// an obstacle. The window is asymmetric and biased toward the leading edge.
func LandingOverlap(p *entity.Player, o *entity.Obstacle, cfg config.CollisionConfig) bool {
	return p.X+cfg.LandLeadPad > o.XLeft && p.X+cfg.LandTrailPad < o.XRight
}
