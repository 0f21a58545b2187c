package enum

// CommandKind settings, update, action
type CommandKind uint8

const (
	_command_kind_beg CommandKind = iota
	CommandSettings
	CommandUpdate
	CommandAction
	_command_kind_end
)

func (k CommandKind) IsAvailable() bool {
	return k > _command_kind_beg && k < _command_kind_end
}

// GameDataKind next_candles, stacks
type GameDataKind uint8

const (
	_game_data_kind_beg GameDataKind = iota
	GameDataNextCandles
	GameDataStacks
	_game_data_kind_end
)

func (k GameDataKind) IsAvailable() bool {
	return k > _game_data_kind_beg && k < _game_data_kind_end
}
