package app

// loadCurrentMsg asks the model to bind the video at the current index.
type loadCurrentMsg struct{}
