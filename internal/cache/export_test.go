package cache

var SetIfGenerationHash = setIfGeneration.Hash()
