package gamemath

// IntegrateGravity advances a vertical velocity by one step of gravity and
// returns the new velocity together with the displacement it produces.
// Velocity is updated before it is applied (semi-implicit Euler).
func IntegrateGravity(speedY, gravity, dt float64) (newSpeedY, dy float64) {
	newSpeedY = speedY + gravity*dt
	return newSpeedY, newSpeedY * dt
}

// HorizontalDirection reduces two held-key states to -1, 0 or 1.
// Holding both cancels out.
func HorizontalDirection(leftPressed, rightPressed bool) float64 {
	var dir float64
	if leftPressed {
		dir--
	}
	if rightPressed {
		dir++
	}
	return dir
}

// HorizontalDisplacement returns how far a direction moves in one step.
func HorizontalDisplacement(dirX, speed, dt float64) float64 {
	if dirX == 0 {
		return 0
	}
	return dirX * speed * dt
}
